package geometry

import "testing"

func sumSpans(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += s.Width
	}
	return n
}

func TestColumns_FillsStripExactly(t *testing.T) {
	res := ComputeWidths(layers(6100000, 460000, 2900000, 1828000, 100000), DefaultMinVisiblePercent)
	for _, cols := range []int{10, 40, 80, 137, 200} {
		spans := Columns(res.Segments, cols)
		if got := sumSpans(spans); got != cols {
			t.Errorf("cols=%d: used %d cells", cols, got)
		}
		for i, s := range spans {
			if s.Width < 1 {
				t.Errorf("cols=%d: span %d has no cells", cols, i)
			}
			if i > 0 && s.Start != spans[i-1].End() {
				t.Errorf("cols=%d: span %d not contiguous", cols, i)
			}
		}
	}
}

func TestColumns_ZeroWidthGetsNoCells(t *testing.T) {
	res := ComputeWidths(layers(500, 0, 500), DefaultMinVisiblePercent)
	spans := Columns(res.Segments, 20)
	if spans[1].Width != 0 {
		t.Fatalf("zero segment width = %d, want 0", spans[1].Width)
	}
	if spans[0].Width != 10 || spans[2].Width != 10 {
		t.Fatalf("spans = %+v, want 10/0/10", spans)
	}
	if _, ok := SpanAt(spans, 10); !ok {
		t.Fatal("column 10 should hit the third span")
	}
	if s, _ := SpanAt(spans, 10); s.LayerID != "c" {
		t.Fatalf("SpanAt(10) = %s, want c", s.LayerID)
	}
}

func TestColumns_MoreSegmentsThanCells(t *testing.T) {
	res := ComputeWidths(layers(1, 1, 1, 1, 1, 1, 1, 1), DefaultMinVisiblePercent)
	spans := Columns(res.Segments, 5)
	if got := sumSpans(spans); got != 5 {
		t.Fatalf("used %d cells, want 5", got)
	}
	for i := 0; i < 5; i++ {
		if spans[i].Width != 1 {
			t.Errorf("span %d width = %d, want 1", i, spans[i].Width)
		}
	}
}

func TestColumns_DegenerateAndEmpty(t *testing.T) {
	res := ComputeWidths(layers(0, 0), DefaultMinVisiblePercent)
	if got := sumSpans(Columns(res.Segments, 30)); got != 0 {
		t.Fatalf("degenerate used %d cells", got)
	}
	if got := sumSpans(Columns(res.Segments, 0)); got != 0 {
		t.Fatalf("zero cols used %d cells", got)
	}
	if _, ok := SpanAt(nil, 0); ok {
		t.Fatal("SpanAt(nil) should miss")
	}
}

func TestColumns_ThinLayerStaysTargetable(t *testing.T) {
	res := ComputeWidths(layers(8500000, 500000, 3200000, 34000, 300000), DefaultMinVisiblePercent)
	spans := Columns(res.Segments, 60)
	if spans[3].Width < 1 {
		t.Fatalf("util fee span width = %d, want >= 1", spans[3].Width)
	}
	s, ok := SpanAt(spans, spans[3].Start)
	if !ok || s.LayerID != "d" {
		t.Fatalf("SpanAt(start of d) = %+v, %v", s, ok)
	}
}
