package ledger

import (
	"testing"

	"pricetag/internal/model"
)

func TestRowsProjection(t *testing.T) {
	l := New()

	c := candidate("A", "20000")
	c.Tag = model.TagSwap
	c.PromoPrice = amount("30000")
	mm := int64(7300)
	c.MassMargin = &mm
	_, _ = l.Commit(c)

	n := candidate("B", "999")
	n.MarginPercent = amount("0")
	n.MarginPercent.Valid = false
	_, _ = l.Commit(n)

	rows := Rows(l.Entries())
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}

	first := rows[0].Values()
	if len(first) != len(Columns) {
		t.Fatalf("values=%d, columns=%d", len(first), len(Columns))
	}
	if first[0] != "A" || first[2] != int64(20000) || first[3] != "26.0" || first[4] != int64(7300) {
		t.Fatalf("unexpected first row: %v", first)
	}
	if first[5] != "swap" || first[6] != "241002" || first[7] != int64(30000) || first[8] != nil {
		t.Fatalf("unexpected first row tail: %v", first)
	}

	second := rows[1].Values()
	if second[3] != model.MarginNotAvailable || second[4] != nil || second[7] != nil {
		t.Fatalf("unexpected second row: %v", second)
	}
}
