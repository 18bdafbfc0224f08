package controllers

import (
	"testing"

	"github.com/mojalektira/backend/models"
)

func TestBookFromRowDefaults(t *testing.T) {
	book, err := BookFromRow(map[string]string{
		"title":  "Mali princ",
		"author": "Antoine de Saint-Exupéry",
	})
	if err != nil {
		t.Fatalf("neočekivana greška: %v", err)
	}

	if book.AgeGroup != "M" {
		t.Errorf("AgeGroup = %q, želim %q", book.AgeGroup, "M")
	}
	if book.Genre != "lektira" {
		t.Errorf("Genre = %q, želim %q", book.Genre, "lektira")
	}
	if book.ReadingDifficulty != models.DifficultyMedium {
		t.Errorf("ReadingDifficulty = %q, želim %q", book.ReadingDifficulty, models.DifficultyMedium)
	}
	if book.CoverImage != placeholderCover {
		t.Errorf("CoverImage = %q, želim %q", book.CoverImage, placeholderCover)
	}
	if book.WeeklyPick {
		t.Error("WeeklyPick mora biti false bez vrijednosti u redu")
	}
}

func TestBookFromRowFullRow(t *testing.T) {
	book, err := BookFromRow(map[string]string{
		"title":             "Na Drini ćuprija",
		"author":            "Ivo Andrić",
		"description":       "Hronika kasabe",
		"ageGroup":          "S",
		"genre":             "roman",
		"readingDifficulty": "tesko",
		"pageCount":         "320",
		"coverImage":        "/uploads/covers/cuprija.jpg",
		"weeklyPick":        "da",
		"publisher":         "Prosveta",
		"publicationYear":   "1945",
		"isbn":              "9788674700456",
	})
	if err != nil {
		t.Fatalf("neočekivana greška: %v", err)
	}

	if book.PageCount != 320 {
		t.Errorf("PageCount = %d, želim 320", book.PageCount)
	}
	if book.PublicationYear != 1945 {
		t.Errorf("PublicationYear = %d, želim 1945", book.PublicationYear)
	}
	if !book.WeeklyPick {
		t.Error("weeklyPick=da mora dati true")
	}
	if book.ReadingDifficulty != models.DifficultyHard {
		t.Errorf("ReadingDifficulty = %q, želim %q", book.ReadingDifficulty, models.DifficultyHard)
	}
}

func TestBookFromRowErrors(t *testing.T) {
	tests := []struct {
		name    string
		row     map[string]string
		wantMsg string
	}{
		{"missing title", map[string]string{"author": "Ivo Andrić"}, "nedostaje naslov"},
		{"missing author", map[string]string{"title": "Prokleta avlija"}, "nedostaje autor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BookFromRow(tt.row)
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("greška = %v, želim %q", err, tt.wantMsg)
			}
		})
	}
}

func TestBookFromRowBadNumbersIgnored(t *testing.T) {
	book, err := BookFromRow(map[string]string{
		"title":           "Tvrđava",
		"author":          "Meša Selimović",
		"pageCount":       "nije broj",
		"publicationYear": "MCMLXX",
	})
	if err != nil {
		t.Fatalf("neočekivana greška: %v", err)
	}
	if book.PageCount != 0 || book.PublicationYear != 0 {
		t.Errorf("neispravni brojevi moraju ostati 0, dobio (%d, %d)", book.PageCount, book.PublicationYear)
	}
}

func TestNormalizeCorrectAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"B", "b"},
		{" c ", "c"},
		{"d", "d"},
		{"e", "a"},
		{"", "a"},
		{"tačno", "a"},
	}
	for _, tt := range tests {
		if got := NormalizeCorrectAnswer(tt.in); got != tt.want {
			t.Errorf("NormalizeCorrectAnswer(%q) = %q, želim %q", tt.in, got, tt.want)
		}
	}
}
