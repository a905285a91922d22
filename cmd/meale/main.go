// Meal-E — a terminal client for the Meal-E fridge backend.
//
// Usage:
//
//	meale [-verbose] [-quiet] [-host 192.168.1.20]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/Daniaarav2005/Meal-E/internal/api"
	"github.com/Daniaarav2005/Meal-E/internal/conversation"
	"github.com/Daniaarav2005/Meal-E/internal/display"
	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/inventory"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
	"github.com/Daniaarav2005/Meal-E/internal/pantry"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".meale-logs/meale.log", "file to write logs to (use \"stderr\" to log to console)")
	host := flag.String("host", getenvDefault("MEALE_API_HOST", "localhost"), "backend host")
	port := flag.String("port", getenvDefault("MEALE_API_PORT", "8000"), "backend port")
	planTimeout := flag.Int("plan-timeout", 300, "meal-plan fetch timeout in seconds")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	store := inventory.NewStore(log)
	ui := display.NewUI(store)
	notifier := conversation.NewCLINotifier(log, ui.Printf)
	parser := conversation.NewKeywordParser(log)

	baseURL := fmt.Sprintf("http://%s:%s", *host, *port)
	client := api.NewClient(baseURL, log,
		api.WithPlanTimeout(time.Duration(*planTimeout)*time.Second),
	)
	log.Info("backend: %s", baseURL)

	app := &cliApp{
		client:   client,
		store:    store,
		parser:   parser,
		notifier: notifier,
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// getenvDefault returns the environment variable value or a default.
func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type cliApp struct {
	client   domain.PantryAPI
	store    *inventory.Store
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI

	mu           sync.Mutex
	profile      *domain.UserProfile
	plan         *domain.MealPlan
	planFetching bool
	lastListing  []domain.Item // items shown in the most recent numbered list
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat(a.greeting())
	a.ui.Println("")
	a.refresh(ctx)
	a.fetchProfile(ctx)

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
	}
}

// handleIntent dispatches one parsed command. Returns true to exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentHome:
		a.showHome()
	case domain.IntentInventory:
		a.showInventory(domain.CategoryAll)
	case domain.IntentShowCategory:
		cat, ok := domain.ParseCategory(intent.Payload)
		if !ok {
			a.ui.PrintHint(fmt.Sprintf("No category called %q. Try: vegetables, fruits, dairy, meat, drinks, leftovers, other.", intent.Payload))
			return false
		}
		a.showInventory(cat)
	case domain.IntentAlerts:
		a.showAlerts()
	case domain.IntentCheckIn:
		a.showCheckIn()
	case domain.IntentDismiss:
		a.dismiss(intent.Payload)
	case domain.IntentRemove:
		a.remove(ctx, intent.Payload)
	case domain.IntentRank:
		a.rank(intent.Payload)
	case domain.IntentScore:
		a.showScore()
	case domain.IntentPlan:
		a.showPlan(ctx, false)
	case domain.IntentPlanFresh:
		a.showPlan(ctx, true)
	case domain.IntentProfile:
		a.showProfile(ctx)
	case domain.IntentSetProfile:
		a.setProfile(ctx, intent.Payload)
	case domain.IntentRefresh:
		a.refresh(ctx)
	case domain.IntentQuit:
		a.ui.PrintChat("Bye! Keep an eye on that milk. 👋")
		return true
	case domain.IntentUnknown:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", intent.Payload))
	}
	return false
}

// ── Data fetching ────────────────────────────────────────────────

// refresh fetches the pantry in the background and atomically replaces
// the collection when done. The generation guard drops responses that
// lose the race against a newer refresh.
func (a *cliApp) refresh(ctx context.Context) {
	gen := a.store.BeginFetch()
	a.ui.PrintHint("Fetching pantry…")

	go func() {
		records, err := a.client.FetchPantry(ctx)
		if err != nil {
			a.log.Error("pantry fetch: %v", err)
			a.notifier.NotifyUrgent(ctx, "Couldn't reach the fridge backend — showing what I had.")
			return
		}

		items := pantry.Enrich(records, time.Now())
		if !a.store.Replace(gen, items) {
			a.log.Debug("refresh result discarded (superseded)")
			return
		}
		a.notifier.Notify(ctx, fmt.Sprintf("Pantry synced: %d items.", len(items)))
	}()
}

// fetchProfile loads the preferences mirror in the background. A failure
// is logged and surfaced once; the app keeps running without a profile.
func (a *cliApp) fetchProfile(ctx context.Context) {
	go func() {
		profile, err := a.client.FetchProfile(ctx)
		if err != nil {
			a.log.Error("profile fetch: %v", err)
			return
		}
		a.mu.Lock()
		a.profile = profile
		a.mu.Unlock()
		a.log.Info("profile loaded for %s", profile.Name)
	}()
}

// ── Command handlers ─────────────────────────────────────────────

func (a *cliApp) greeting() string {
	name := "there"
	a.mu.Lock()
	if a.profile != nil && a.profile.Name != "" {
		name = a.profile.Name
	}
	a.mu.Unlock()

	hour := time.Now().Hour()
	switch {
	case hour < 12:
		return fmt.Sprintf("Good morning, %s 🌤️", name)
	case hour < 17:
		return fmt.Sprintf("Good afternoon, %s ☀️", name)
	default:
		return fmt.Sprintf("Good evening, %s 🌙", name)
	}
}

func (a *cliApp) showHome() {
	now := time.Now()

	a.ui.PrintChat(a.greeting())
	a.ui.Println("")

	score := a.store.HealthScore(now)
	a.ui.PrintHeader(fmt.Sprintf("❤️  Fridge health: %d/100", score))

	if urgent, ok := a.store.MostUrgent(now); ok && urgent.IsExpiringSoon(now) {
		a.ui.PrintUrgent(fmt.Sprintf("Use the %s %s first — %s.", urgent.Emoji, urgent.Name, strings.ToLower(daysLabel(urgent, now))))
	}
	a.ui.Println("")

	recent := a.store.Recent(5)
	if len(recent) > 0 {
		a.ui.PrintHeader("🕑 Recently added")
		for _, it := range recent {
			a.ui.PrintLine(fmt.Sprintf("%s %s · %s", it.Emoji, it.Name, daysLabel(it, now)))
		}
		a.ui.Println("")
	}

	breakdown := a.store.CategoryBreakdown()
	if len(breakdown) > 0 {
		a.ui.PrintHeader("📊 By category")
		for _, g := range breakdown {
			a.ui.PrintLine(fmt.Sprintf("%s %-11s %2d item%s (%.0f%%)",
				g.Category.Emoji(), g.Category, g.Count, plural(g.Count), g.Percent*100))
		}
		a.ui.Println("")
	}

	if tiles := a.nutritionTiles(); tiles != "" {
		a.ui.PrintHeader("🍽️  What's in there")
		a.ui.PrintLine(tiles)
		a.ui.Println("")
	}

	a.ui.PrintHint("Try 'alerts', 'rank protein', or 'plan'.")
}

// nutritionTiles sums each tracked nutrient over the items that report
// it. Empty string when nothing in the fridge carries nutrition data.
func (a *cliApp) nutritionTiles() string {
	var parts []string
	items := a.store.Items()
	for _, axis := range domain.Axes {
		total := 0.0
		known := false
		for _, it := range items {
			if v, ok := axis.Value(it); ok {
				total += v
				known = true
			}
		}
		if !known {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.0f %s", axis, total, axis.Unit()))
	}
	return strings.Join(parts, " · ")
}

func (a *cliApp) showInventory(cat domain.Category) {
	now := time.Now()
	items := a.store.InCategory(cat, now)
	if len(items) == 0 {
		if cat == domain.CategoryAll {
			a.ui.PrintHint("The fridge is empty. Try 'refresh'.")
		} else {
			a.ui.PrintHint(fmt.Sprintf("Nothing in %s.", cat))
		}
		return
	}

	header := fmt.Sprintf("%s %s · %d item%s · sorted by freshness", cat.Emoji(), cat, len(items), plural(len(items)))
	a.ui.PrintHeader(header)
	a.printNumbered(items, now)
	a.ui.PrintHint("'used N' removes an item, 'rank protein' sorts by nutrient.")
}

func (a *cliApp) showAlerts() {
	now := time.Now()
	soon := a.store.ExpiringSoon(now)
	if len(soon) == 0 {
		a.ui.PrintChat("Nothing expiring in the next 3 days. ✨")
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("⏰ Expiring soon (%d)", len(soon)))
	a.printNumbered(soon, now)
	a.ui.PrintHint("'used N' if you finished it, 'delete N' if it's gone bad.")
}

func (a *cliApp) showCheckIn() {
	now := time.Now()
	items := a.store.CheckIn(now)
	if len(items) == 0 {
		a.ui.PrintChat("Nothing to check in on right now.")
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("👀 Still have these? (%d)", len(items)))
	a.printNumbered(items, now)
	a.ui.PrintHint("'dismiss N' to confirm you still have it, 'used N' if it's gone.")
}

// printNumbered prints items with 1-based indexes and records the
// listing so later 'dismiss N' / 'used N' commands can resolve N.
func (a *cliApp) printNumbered(items []domain.Item, now time.Time) {
	for i, it := range items {
		status := it.ExpiryStatus(now)
		line := fmt.Sprintf("%2d. %s %-20s ×%-5s %s", i+1, it.Emoji, it.Name, it.Quantity, daysLabel(it, now))
		if status == domain.StatusExpired || status == domain.StatusCritical {
			a.ui.PrintUrgent(line)
		} else {
			a.ui.PrintLine(line)
		}
	}

	a.mu.Lock()
	a.lastListing = items
	a.mu.Unlock()
}

// resolveListed maps a typed 1-based number to an item from the most
// recent numbered listing.
func (a *cliApp) resolveListed(payload string) (domain.Item, bool) {
	n, err := strconv.Atoi(payload)
	if err != nil || n < 1 {
		a.ui.PrintHint("Give me the item number from the last list.")
		return domain.Item{}, false
	}

	a.mu.Lock()
	listing := a.lastListing
	a.mu.Unlock()

	if listing == nil || n > len(listing) {
		a.ui.PrintHint("That number isn't in the last list. Show a list first ('inventory', 'alerts', 'checkin').")
		return domain.Item{}, false
	}
	return listing[n-1], true
}

func (a *cliApp) dismiss(payload string) {
	it, ok := a.resolveListed(payload)
	if !ok {
		return
	}
	a.store.DismissCheckIn(it.ID)
	a.ui.PrintChat(fmt.Sprintf("Got it — keeping the %s %s off the check-in list.", it.Emoji, it.Name))
}

func (a *cliApp) remove(ctx context.Context, payload string) {
	it, ok := a.resolveListed(payload)
	if !ok {
		return
	}

	if _, err := a.store.Remove(it.ID); err != nil {
		a.ui.PrintHint("That item is already gone.")
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Removed %s %s.", it.Emoji, it.Name))

	// Local removal is immediate; the backend delete runs behind it.
	go func() {
		if err := a.client.DeletePantryItem(ctx, it.BackendID); err != nil {
			a.log.Error("backend delete for %q (id=%d): %v", it.Name, it.BackendID, err)
			a.notifier.NotifyUrgent(ctx, fmt.Sprintf("Couldn't delete %s on the server — it may come back on the next sync.", it.Name))
		}
	}()
}

func (a *cliApp) rank(payload string) {
	axis := domain.AxisCalories
	if payload != "" {
		parsed, ok := domain.ParseNutrientAxis(payload)
		if !ok {
			a.ui.PrintHint("I can rank by calories, protein, carbs, or fat.")
			return
		}
		axis = parsed
	}

	ranked := a.store.RankBy(axis)
	if len(ranked) == 0 {
		a.ui.PrintHint("Nothing to rank — the fridge is empty.")
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("🏆 %s, highest first", axis))
	for i, it := range ranked {
		val := domain.MissingValue
		if v, ok := axis.Value(it); ok {
			val = fmt.Sprintf("%.1f %s", v, axis.Unit())
			if axis == domain.AxisCalories {
				val = fmt.Sprintf("%.0f %s", v, axis.Unit())
			}
		}
		a.ui.PrintLine(fmt.Sprintf("%2d. %s %-20s %s", i+1, it.Emoji, it.Name, val))
	}
}

func (a *cliApp) showScore() {
	now := time.Now()
	score := a.store.HealthScore(now)

	a.ui.PrintHeader(fmt.Sprintf("❤️  Fridge health: %d/100", score))
	switch {
	case score >= 80:
		a.ui.PrintChat("Looking fresh in there.")
	case score >= 50:
		a.ui.PrintChat("A few things need attention — check 'alerts'.")
	default:
		a.ui.PrintUrgent("Time for a clear-out. 'alerts' shows the worst offenders.")
	}

	var expired int
	for _, it := range a.store.Items() {
		if it.IsExpired(now) {
			expired++
		}
	}
	if expired > 0 {
		a.ui.PrintHint(fmt.Sprintf("%d item%s already expired.", expired, plural(expired)))
	}
}

func (a *cliApp) showPlan(ctx context.Context, generate bool) {
	a.mu.Lock()
	if a.planFetching {
		a.mu.Unlock()
		a.ui.PrintHint("Already working on the plan — hang tight.")
		return
	}
	cached := a.plan
	a.mu.Unlock()

	if cached != nil && !generate {
		a.printPlan(cached)
		return
	}

	a.mu.Lock()
	a.planFetching = true
	a.mu.Unlock()

	if generate {
		a.ui.PrintHint("Generating a fresh plan — this can take a few minutes…")
	} else {
		a.ui.PrintHint("Fetching your meal plan…")
	}

	go func() {
		plan, err := a.client.FetchMealPlan(ctx, generate)

		a.mu.Lock()
		a.planFetching = false
		if err == nil {
			a.plan = plan
		}
		prior := a.plan
		a.mu.Unlock()

		if err != nil {
			a.log.Error("meal plan fetch: %v", err)
			a.notifier.NotifyUrgent(ctx, "Couldn't fetch the meal plan.")
			// Keep showing the previous plan if we had one.
			if prior != nil {
				a.printPlan(prior)
			}
			return
		}
		a.printPlan(plan)
	}()
}

func (a *cliApp) printPlan(plan *domain.MealPlan) {
	if len(plan.Days) == 0 {
		a.ui.PrintHint("The plan came back empty. Try 'plan fresh'.")
		return
	}

	for _, day := range plan.Days {
		a.ui.PrintHeader(fmt.Sprintf("📅 %s", day.Day))
		for _, m := range day.Meals {
			a.ui.PrintLine(fmt.Sprintf("%s — %d min · %s", m.Name, m.PrepTimeMinutes, m.Difficulty))
			a.ui.PrintHint(fmt.Sprintf("    %.0f kcal · %.0fg protein · %.0fg carbs · %.0fg fat",
				m.Macros.Calories, m.Macros.Protein, m.Macros.Carbohydrates, m.Macros.Fat))
			if len(m.Ingredients) > 0 {
				names := make([]string, 0, len(m.Ingredients))
				for name := range m.Ingredients {
					names = append(names, name)
				}
				sort.Strings(names)
				a.ui.PrintHint("    needs: " + strings.Join(names, ", "))
			}
		}
		a.ui.Println("")
	}
}

func (a *cliApp) showProfile(ctx context.Context) {
	a.mu.Lock()
	p := a.profile
	a.mu.Unlock()

	if p == nil {
		a.ui.PrintHint("Profile not loaded yet — fetching…")
		a.fetchProfile(ctx)
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("👤 %s", p.Name))
	a.ui.PrintLine(fmt.Sprintf("age %d · household of %d · %d meals/day", p.Age, p.HouseholdSize, p.MealsPerDay))
	a.ui.PrintLine(fmt.Sprintf("targets: %d kcal, %dg protein", p.MacroTargets.Calories, p.MacroTargets.Protein))
	a.ui.PrintLine(fmt.Sprintf("diet: %s · skill: %s", orDash(p.DietaryRestriction), orDash(p.CookingProficiency)))
	a.ui.PrintLine("allergies: " + listOrDash(p.Allergies))
	a.ui.PrintLine("cuisines: " + listOrDash(p.CuisinePreferences))
	a.ui.PrintHint("'set <field> <value>' edits — fields: name, age, household, meals, calories, protein, diet, skill, allergies, cuisines.")
}

func (a *cliApp) setProfile(ctx context.Context, payload string) {
	a.mu.Lock()
	p := a.profile
	a.mu.Unlock()

	if p == nil {
		a.ui.PrintHint("Profile not loaded yet — try again in a moment.")
		a.fetchProfile(ctx)
		return
	}

	parts := strings.SplitN(payload, " ", 2)
	if len(parts) != 2 {
		a.ui.PrintHint("Usage: set <field> <value>, e.g. 'set calories 2200'.")
		return
	}
	field, value := strings.ToLower(parts[0]), strings.TrimSpace(parts[1])

	updated := *p
	switch field {
	case "name":
		updated.Name = value
	case "age":
		n, err := strconv.Atoi(value)
		if err != nil {
			a.ui.PrintHint("Age needs to be a number.")
			return
		}
		updated.Age = n
	case "household":
		n, err := strconv.Atoi(value)
		if err != nil {
			a.ui.PrintHint("Household size needs to be a number.")
			return
		}
		updated.HouseholdSize = n
	case "meals":
		n, err := strconv.Atoi(value)
		if err != nil {
			a.ui.PrintHint("Meals per day needs to be a number.")
			return
		}
		updated.MealsPerDay = n
	case "calories":
		n, err := strconv.Atoi(value)
		if err != nil {
			a.ui.PrintHint("Calorie target needs to be a number.")
			return
		}
		updated.MacroTargets.Calories = n
	case "protein":
		n, err := strconv.Atoi(value)
		if err != nil {
			a.ui.PrintHint("Protein target needs to be a number.")
			return
		}
		updated.MacroTargets.Protein = n
	case "diet":
		updated.DietaryRestriction = value
	case "skill":
		updated.CookingProficiency = value
	case "allergies":
		updated.Allergies = splitList(value)
	case "cuisines":
		updated.CuisinePreferences = splitList(value)
	default:
		a.ui.PrintHint(fmt.Sprintf("No field called %q.", field))
		return
	}

	a.mu.Lock()
	a.profile = &updated
	a.mu.Unlock()
	a.ui.PrintChat(fmt.Sprintf("Set %s. Pushing to the server…", field))

	go func() {
		if err := a.client.SaveProfile(ctx, &updated); err != nil {
			a.log.Error("profile save: %v", err)
			a.notifier.NotifyUrgent(ctx, "Couldn't save your profile — the change is local only.")
			return
		}
		a.notifier.Notify(ctx, "Profile saved.")
	}()
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Commands")
	a.ui.PrintLine("home                fridge summary: health, recent items, categories")
	a.ui.PrintLine("inventory           everything, freshest last")
	a.ui.PrintLine("show <category>     filter (or just type 'dairy', 'drinks', …)")
	a.ui.PrintLine("alerts              items expiring within 3 days")
	a.ui.PrintLine("checkin             items to confirm you still have")
	a.ui.PrintLine("dismiss N           confirm item N from the last list")
	a.ui.PrintLine("used N / delete N   remove item N here and on the server")
	a.ui.PrintLine("rank <nutrient>     sort by calories, protein, carbs, or fat")
	a.ui.PrintLine("score               fridge health score")
	a.ui.PrintLine("plan [fresh]        weekly meal plan ('fresh' regenerates)")
	a.ui.PrintLine("profile             your preferences mirror")
	a.ui.PrintLine("set <field> <val>   edit a profile field and push it")
	a.ui.PrintLine("refresh             re-fetch the pantry")
	a.ui.PrintLine("quit                exit")
}

// ── Formatting helpers ───────────────────────────────────────────

// daysLabel renders an item's time-to-expiry the way the alert list
// shows it.
func daysLabel(it domain.Item, now time.Time) string {
	d := it.DaysLeft(now)
	switch {
	case d < 0:
		return "Expired"
	case d == 0:
		return "Expires today!"
	case d == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", d)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.MissingValue
	}
	return s
}

func listOrDash(list []string) string {
	if len(list) == 0 {
		return "none"
	}
	return strings.Join(list, ", ")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
