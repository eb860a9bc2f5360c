// Package export renders flat record projections of the aggregate as CSV,
// the format the dashboard's download buttons produce: a header row, then
// one line per record with every field individually JSON-quoted.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"dhanbad/wellness-admin/internal/domain"
)

// Record is one flat CSV row: ordered column names and their values.
type Record struct {
	Columns []string
	Values  []any
}

// WriteCSV renders the records. All rows share the first record's columns.
func WriteCSV(records []Record) []byte {
	var buf bytes.Buffer
	if len(records) == 0 {
		return buf.Bytes()
	}
	buf.WriteString(strings.Join(records[0].Columns, ","))
	buf.WriteByte('\n')
	for _, rec := range records {
		for i, v := range rec.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			// JSON encoding quotes and escapes strings and leaves
			// numbers bare, matching the original export format.
			b, err := json.Marshal(v)
			if err != nil {
				b = []byte(fmt.Sprintf("%q", fmt.Sprint(v)))
			}
			buf.Write(b)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// ClientRegistry is the client-list projection: one row per client with the
// center name and plan titles resolved. Unknown references come out empty,
// never as an error.
func ClientRegistry(data domain.AppData) []Record {
	out := make([]Record, 0, len(data.Clients))
	cols := []string{"ID", "Name", "Phone", "Center", "Weight", "Conditions"}
	for _, c := range data.Clients {
		centerName := ""
		if ctr, ok := data.FindCenter(c.CenterID); ok {
			centerName = ctr.Name
		}
		titles := make([]string, 0, len(c.Plans))
		for _, pid := range c.Plans {
			if p, ok := data.FindPlan(pid); ok {
				titles = append(titles, p.Title)
			} else {
				titles = append(titles, "")
			}
		}
		out = append(out, Record{
			Columns: cols,
			Values:  []any{c.ID, c.Name, c.Phone, centerName, c.Metrics.WeightKg, strings.Join(titles, "; ")},
		})
	}
	return out
}

// Appointments is the raw schedule projection, one row per booking.
func Appointments(data domain.AppData) []Record {
	out := make([]Record, 0, len(data.Appointments))
	cols := []string{"id", "centerId", "trainerId", "clientId", "start", "end", "type", "notes"}
	for _, a := range data.Appointments {
		out = append(out, Record{
			Columns: cols,
			Values:  []any{a.ID, a.CenterID, a.TrainerID, a.ClientID, a.Start, a.End, string(a.Type), a.Notes},
		})
	}
	return out
}
