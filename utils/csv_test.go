package utils

import (
	"strings"
	"testing"
)

func TestParseDelimited(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantHeader []string
		wantRows   int
	}{
		{
			name:       "basic rows",
			text:       "\"title\";\"author\"\r\n\"Na Drini ćuprija\";\"Ivo Andrić\"\r\n\"Derviš i smrt\";\"Meša Selimović\"\r\n",
			wantHeader: []string{"title", "author"},
			wantRows:   2,
		},
		{
			name:       "BOM and unix line endings",
			text:       "\ufefftitle;author\nProkleta avlija;Ivo Andrić\n",
			wantHeader: []string{"title", "author"},
			wantRows:   1,
		},
		{
			name:       "row with wrong field count is dropped silently",
			text:       "title;author\nsamo-naslov\nTvrđava;Meša Selimović\n",
			wantHeader: []string{"title", "author"},
			wantRows:   1,
		},
		{
			name:       "empty lines are skipped",
			text:       "title;author\n\n\nGrozdanin kikot;Hamza Humo\n",
			wantHeader: []string{"title", "author"},
			wantRows:   1,
		},
		{
			name:       "empty input",
			text:       "",
			wantHeader: nil,
			wantRows:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, rows := ParseDelimited(tt.text)
			if len(header) != len(tt.wantHeader) {
				t.Fatalf("header = %v, želim %v", header, tt.wantHeader)
			}
			for i := range header {
				if header[i] != tt.wantHeader[i] {
					t.Errorf("header[%d] = %q, želim %q", i, header[i], tt.wantHeader[i])
				}
			}
			if len(rows) != tt.wantRows {
				t.Errorf("rows = %d, želim %d", len(rows), tt.wantRows)
			}
		})
	}
}

func TestParseDelimitedLineNumbers(t *testing.T) {
	text := "title;author\nKnjiga 1;Autor 1\nlos-red\nKnjiga 2;Autor 2\n"
	_, rows := ParseDelimited(text)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, želim 2", len(rows))
	}
	// Odbačeni red ne smije pomjeriti numeraciju preostalih.
	if rows[0].Line != 2 || rows[1].Line != 4 {
		t.Errorf("brojevi redova = %d, %d; želim 2, 4", rows[0].Line, rows[1].Line)
	}
}

func TestParseDelimitedStripsQuotes(t *testing.T) {
	_, rows := ParseDelimited("naslov\n\"Mali princ\"\n")
	if len(rows) != 1 {
		t.Fatal("očekujem jedan red")
	}
	if rows[0].Fields[0] != "Mali princ" {
		t.Errorf("polje = %q, želim %q", rows[0].Fields[0], "Mali princ")
	}
}

func TestBuildDelimitedRoundTrip(t *testing.T) {
	header := []string{"title", "author"}
	data := [][]string{
		{"Mali princ", "Antoine de Saint-Exupéry"},
		{"Na Drini ćuprija", "Ivo Andrić"},
	}

	doc := BuildDelimited(header, data)

	if !strings.HasPrefix(doc, "\ufeff") {
		t.Error("dokument mora počinjati BOM-om")
	}
	if !strings.Contains(doc, "\r\n") {
		t.Error("dokument mora koristiti CRLF")
	}

	gotHeader, gotRows := ParseDelimited(doc)
	if len(gotHeader) != 2 || gotHeader[0] != "title" {
		t.Fatalf("zaglavlje poslije round-trip = %v", gotHeader)
	}
	if len(gotRows) != 2 {
		t.Fatalf("redovi poslije round-trip = %d", len(gotRows))
	}
	for i, row := range gotRows {
		for j, f := range row.Fields {
			if f != data[i][j] {
				t.Errorf("polje [%d][%d] = %q, želim %q", i, j, f, data[i][j])
			}
		}
	}
}
