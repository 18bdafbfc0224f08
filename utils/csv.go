package utils

import "strings"

// CSV dijalekt za masovni uvoz: polja razdvojena tačka-zarezom, omotana
// dvostrukim navodnicima, bez escapovanja. UTF-8 sa BOM-om, prihvata i
// CRLF i LF. Redovi čiji broj polja ne odgovara zaglavlju se tiho
// odbacuju - uvoz se oslanja na tu popustljivost.

const bom = "\ufeff"

type Row struct {
	Line   int // 1-bazirani broj reda u fajlu (zaglavlje je red 1)
	Fields []string
}

func splitFields(line string) []string {
	parts := strings.Split(line, ";")
	fields := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
			p = p[1 : len(p)-1]
		}
		fields[i] = p
	}
	return fields
}

// ParseDelimited vraća zaglavlje i redove čiji broj polja tačno odgovara
// broju polja zaglavlja. Prazni redovi se preskaču.
func ParseDelimited(text string) ([]string, []Row) {
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	var header []string
	var rows []Row

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header) {
			continue
		}
		rows = append(rows, Row{Line: i + 1, Fields: fields})
	}
	return header, rows
}

// BuildDelimited gradi cijeli dokument u memoriji: BOM, navodnici oko
// svakog polja, CRLF završeci.
func BuildDelimited(header []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(bom)
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				sb.WriteString(";")
			}
			sb.WriteString(`"`)
			sb.WriteString(f)
			sb.WriteString(`"`)
		}
		sb.WriteString("\r\n")
	}
	writeLine(header)
	for _, r := range rows {
		writeLine(r)
	}
	return sb.String()
}
