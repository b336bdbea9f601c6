package model

import "testing"

func TestItemKind_String(t *testing.T) {
	tests := []struct {
		kind     ItemKind
		expected string
	}{
		{KindStudioRecording, "studio"},
		{KindInstantRecording, "instant"},
		{KindScreenshot, "screenshot"},
		{ItemKind(42), "unknown"},
	}

	for _, test := range tests {
		if result := test.kind.String(); result != test.expected {
			t.Errorf("ItemKind(%d).String() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}

func TestItem_HasThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		thumb    *Thumbnail
		expected bool
	}{
		{"nil", nil, false},
		{"empty", &Thumbnail{}, false},
		{"filled", &Thumbnail{Pix: make([]uint8, 4), Width: 1, Height: 1}, true},
	}

	for _, test := range tests {
		item := Item{Path: "/tmp/a.cap", Thumbnail: test.thumb}
		if result := item.HasThumbnail(); result != test.expected {
			t.Errorf("%s: HasThumbnail() = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestThumbnail_Image(t *testing.T) {
	thumb := &Thumbnail{Pix: make([]uint8, 2*3*4), Width: 2, Height: 3}
	thumb.Pix[4] = 255 // R of pixel (1,0)

	img := thumb.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r>>8 != 255 {
		t.Errorf("expected red channel 255 at (1,0), got %d", r>>8)
	}
}
