package render

import (
	"errors"
	"testing"

	"github.com/OpticalFlyer/tabmenu/geom"
)

func TestRectPoint(t *testing.T) {
	pos := geom.Vec(10, 10)
	size := geom.Vec(20, 30)

	tests := []struct {
		corner Corner
		want   geom.Vector2f
	}{
		{TopLeft, geom.Vec(10, 10)},
		{TopRight, geom.Vec(30, 10)},
		{BottomLeft, geom.Vec(10, 40)},
		{BottomRight, geom.Vec(30, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			got, err := RectPoint(pos, size, tt.corner)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestRectPointInvalidCorner(t *testing.T) {
	for _, c := range []Corner{-1, 4, 99} {
		got, err := RectPoint(geom.Vec(10, 10), geom.Vec(20, 30), c)
		if !errors.Is(err, ErrInvalidCorner) {
			t.Errorf("%v: got err %v; want ErrInvalidCorner", c, err)
		}
		if got != (geom.Vector2f{}) {
			t.Errorf("%v: got %v; want zero value", c, got)
		}
	}
}

func TestRecorderFrames(t *testing.T) {
	var r Recorder
	if err := r.InitWindow("menu", geom.Vec(640, 480)); err != nil {
		t.Fatal(err)
	}

	r.PreFrame()
	r.DrawFilledBox(geom.Vec(0, 0), geom.Vec(5, 5), geom.White())
	r.DrawLine(geom.Vec(0, 0), geom.Vec(5, 5), geom.Black())
	r.RenderText(geom.Vec(1, 1), geom.Black(), "tab %d", 2)
	r.Present()

	if got := len(r.Calls); got != 3 {
		t.Fatalf("got %d calls; want 3", got)
	}
	if got := r.Texts(); len(got) != 1 || got[0] != "tab 2" {
		t.Errorf("Texts: got %v", got)
	}
	if r.Calls[1].Size != geom.Vec(5, 5) {
		t.Errorf("line end not recorded: %+v", r.Calls[1])
	}

	r.PreFrame()
	if r.Count(OpFilledBox) != 0 {
		t.Error("PreFrame did not clear the previous frame")
	}
	if r.Frames != 1 {
		t.Errorf("got %d frames; want 1", r.Frames)
	}
}
