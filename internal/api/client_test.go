package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

func testLog() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func TestFetchPantryDecodesNulls(t *testing.T) {
	const payload = `{"pantry":[
		{"id":1,"name":"Milk","brand":"X","quantity":1.0,"serving_size":"1 cup",
		 "nutrients":{"calories":61,"carbohydrates":null,"protein":null,"fat":null,
		  "saturated_fat":null,"trans_fat":null,"sugar":null,"added_sugar":null,
		  "fiber":null,"sodium":null,"iron":null,"calcium":null,"potassium":null,
		  "vitamin_d":null}},
		{"id":2,"name":"Chopped Garlic","brand":"Y","quantity":null,"serving_size":null,
		 "nutrients":{}}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/pantry" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	records, err := client.FetchPantry(context.Background())
	if err != nil {
		t.Fatalf("fetch pantry: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	milk := records[0]
	if milk.ID != 1 || milk.Name != "Milk" {
		t.Errorf("first record = %+v", milk)
	}
	if milk.Quantity == nil || *milk.Quantity != 1.0 {
		t.Errorf("milk quantity = %v, want 1.0", milk.Quantity)
	}
	if milk.Nutrients.Calories == nil || *milk.Nutrients.Calories != 61 {
		t.Errorf("milk calories = %v, want 61", milk.Nutrients.Calories)
	}
	if milk.Nutrients.Protein != nil {
		t.Error("null protein decoded as a value")
	}

	garlic := records[1]
	if garlic.Quantity != nil || garlic.ServingSize != nil {
		t.Errorf("null fields leaked values: %+v", garlic)
	}
}

func TestFetchPantryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	if _, err := client.FetchPantry(context.Background()); err == nil {
		t.Fatal("expected error on 500, got nil")
	}
}

func TestDeletePantryItem(t *testing.T) {
	var gotMethod, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	if err := client.DeletePantryItem(context.Background(), 42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
	if gotQuery != "id=42" {
		t.Errorf("query = %q, want id=42", gotQuery)
	}
}

func TestDeletePantryItemNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	if err := client.DeletePantryItem(context.Background(), 7); err == nil {
		t.Fatal("expected error on 404, got nil")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	const stored = `{"name":"Jordan","age":29,"household_size":2,"meals_per_day":3,
		"macro_targets":{"calories":2200,"protein":140},
		"dietary_restriction":"vegetarian","allergies":["peanuts"],
		"cooking_proficiency":"intermediate","cuisine_preferences":["thai","italian"]}`

	var putBody map[string]any
	var putContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/preferences" {
			t.Errorf("path = %s", r.URL.Path)
		}
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(stored))
		case http.MethodPut:
			putContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&putBody); err != nil {
				t.Errorf("decode PUT body: %v", err)
			}
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	ctx := context.Background()

	profile, err := client.FetchProfile(ctx)
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if profile.Name != "Jordan" || profile.MacroTargets.Protein != 140 {
		t.Errorf("profile = %+v", profile)
	}

	profile.HouseholdSize = 3
	if err := client.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if putContentType != "application/json" {
		t.Errorf("content type = %q", putContentType)
	}
	// Compound fields go over the wire in snake_case.
	if putBody["household_size"] != float64(3) {
		t.Errorf("household_size = %v, want 3", putBody["household_size"])
	}
	if _, ok := putBody["macro_targets"]; !ok {
		t.Error("macro_targets missing from PUT body")
	}
}

func TestFetchMealPlan(t *testing.T) {
	const payload = `{"plan":[{"day":"Monday","meals":[
		{"name":"Stir Fry","recipe":"Chop and fry.","ingredients":{"broccoli":"2 cups"},
		 "prep_time_minutes":25,"difficulty":"low",
		 "macros":{"calories":420,"protein":18}}]}]}`

	var gotGenerate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meal-plan" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotGenerate = r.URL.Query().Get("generate")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLog())
	plan, err := client.FetchMealPlan(context.Background(), true)
	if err != nil {
		t.Fatalf("fetch meal plan: %v", err)
	}
	if gotGenerate != "true" {
		t.Errorf("generate = %q, want true", gotGenerate)
	}
	if len(plan.Days) != 1 || plan.Days[0].Day != "Monday" {
		t.Fatalf("plan = %+v", plan)
	}

	m := plan.Days[0].Meals[0]
	if m.PrepTimeMinutes != 25 || m.Difficulty != "low" {
		t.Errorf("meal = %+v", m)
	}
	if m.Macros.Calories != 420 || m.Macros.Protein != 18 {
		t.Errorf("macros = %+v", m.Macros)
	}
	// Fields the server left silent default to zero, not to a sentinel.
	if m.Macros.Fat != 0 || m.Macros.Sodium != 0 {
		t.Errorf("silent macros nonzero: %+v", m.Macros)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("double slash in path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"pantry":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", testLog())
	records, err := client.FetchPantry(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v, want empty", records)
	}
}
