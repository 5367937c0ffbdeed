package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGameInputGame(t *testing.T) {
	id, players := 6, 0
	title, genre := "New Game", ""
	rating := 0.0

	g := GameInput{ID: &id, Title: &title, Genre: &genre, MaxPlayers: &players, Rating: &rating}.Game()

	want := Game{ID: 6, Title: "New Game", Genre: "", MaxPlayers: 0, Rating: 0}
	if g != want {
		t.Fatalf("expected %+v, got %+v", want, g)
	}
}

func TestGameRecordRoundTrip(t *testing.T) {
	g := Game{ID: 3, Title: "Race Master", Genre: "Racing", MaxPlayers: 8, Rating: 4.5}

	rec := NewGameRecord(g)
	if rec.Seq != 0 {
		t.Fatalf("expected new record to have no sequence, got %d", rec.Seq)
	}
	if got := rec.Game(); got != g {
		t.Fatalf("expected %+v, got %+v", g, got)
	}
	if rec.TableName() != "games" {
		t.Fatalf("unexpected table name %q", rec.TableName())
	}
}

func TestGameInputUnmarshalCoerces(t *testing.T) {
	var in GameInput
	body := `{"id":"6","title":"New Game","genre":"Strategy","max_players":2.0,"rating":"4.5"}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Game{ID: 6, Title: "New Game", Genre: "Strategy", MaxPlayers: 2, Rating: 4.5}
	if got := in.Game(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGameInputUnmarshalLeavesMissingNil(t *testing.T) {
	var in GameInput
	if err := json.Unmarshal([]byte(`{"id":1,"title":"x"}`), &in); err != nil {
		t.Fatalf("missing fields alone should decode, got %v", err)
	}
	if in.ID == nil || in.Title == nil {
		t.Fatalf("expected present fields to be set: %+v", in)
	}
	if in.Genre != nil || in.MaxPlayers != nil || in.Rating != nil {
		t.Fatalf("expected absent fields to stay nil: %+v", in)
	}
}

func TestGameInputUnmarshalRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{"fractional int", `{"id":2.5,"title":"a","genre":"b","max_players":1,"rating":1}`, []string{"id:int_from_float"}},
		{"huge int", `{"id":"99999999999999999999","title":"a","genre":"b","max_players":1,"rating":1}`, []string{"id:int_parsing_size"}},
		{"null string", `{"id":1,"title":null,"genre":"b","max_players":1,"rating":1}`, []string{"title:string_type"}},
		{"bool string", `{"id":1,"title":"a","genre":true,"max_players":1,"rating":1}`, []string{"genre:string_type"}},
		{"array int", `{"id":1,"title":"a","genre":"b","max_players":[1],"rating":1}`, []string{"max_players:int_type"}},
		{"infinite rating", `{"id":1,"title":"a","genre":"b","max_players":1,"rating":"inf"}`, []string{"rating:finite_number"}},
		{"null rating", `{"id":1,"title":"a","genre":"b","max_players":1,"rating":null}`, []string{"rating:float_type"}},
		{
			"errors keep field order with missing",
			`{"rating":"x","id":"y"}`,
			[]string{"id:int_parsing", "title:missing", "genre:missing", "max_players:missing", "rating:float_parsing"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in GameInput
			err := json.Unmarshal([]byte(tc.body), &in)

			var fieldErrs FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			got := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				got = append(got, fe.Field+":"+fe.Type)
			}
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
