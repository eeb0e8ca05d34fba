package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/goalline/internal/client/models"
)

// renderTable writes rows under headers as aligned columns. An empty
// listing prints "(no results)".
func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no results)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func renderPageFooter[T any](w io.Writer, p *models.Page[T]) {
	pages := p.TotalPages
	if pages == 0 && p.PageSize > 0 {
		pages = (p.Total + p.PageSize - 1) / p.PageSize
	}
	fmt.Fprintf(w, "page %d/%d, %d total\n", p.Page, pages, p.Total)
	if p.HasNext() {
		fmt.Fprintf(w, "more results: add page=%d\n", p.Page+1)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func itoa(n int) string { return fmt.Sprint(n) }

// scoreText renders a match score, whose shape varies between fixtures.
func scoreText(m models.Match) string {
	raw := strings.TrimSpace(string(m.Score))
	if raw == "" || raw == "null" {
		return "-"
	}
	return strings.Trim(raw, `"`)
}

func renderNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "(no notes)")
		return
	}
	for _, n := range notes {
		when := "-"
		if n.CreatedAt != nil {
			when = n.CreatedAt.UTC().Format("2006-01-02 15:04")
		}
		author := n.CreatedBy.Username
		if author == "" {
			author = n.CreatedBy.UserID
		}
		edited := ""
		if n.EditedAt != nil {
			edited = " (edited)"
		}
		fmt.Fprintf(w, "[%s] %s by %s%s\n", n.ID, when, orDash(author), edited)
		for _, line := range strings.Split(n.Text, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
