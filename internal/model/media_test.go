package model

import (
	"reflect"
	"testing"
)

func TestMediaSet_URLs(t *testing.T) {
	m := MediaSet{
		MainImage: "main.jpg",
		Gallery:   []string{"g1.jpg", "", "g2.jpg"},
		Videos:    []Video{{URL: "v1.mp4", Caption: "intro"}, {URL: ""}},
	}
	want := []string{"main.jpg", "g1.jpg", "g2.jpg", "v1.mp4"}
	if got := m.URLs(); !reflect.DeepEqual(got, want) {
		t.Errorf("URLs() = %v; want %v", got, want)
	}

	if got := (MediaSet{}).URLs(); len(got) != 0 {
		t.Errorf("empty set URLs() = %v; want none", got)
	}
}

func TestEntities_MediaRoundTrip(t *testing.T) {
	set := MediaSet{MainImage: "a", Gallery: []string{"b"}, Videos: []Video{{URL: "c"}}}
	holders := map[string]MediaHolder{
		"category": &Category{},
		"product":  &Product{},
		"content":  &ContentSection{},
	}
	for name, h := range holders {
		h.SetMedia(set)
		if got := h.Media(); !reflect.DeepEqual(got.URLs(), set.URLs()) {
			t.Errorf("%s: Media() = %+v; want %+v", name, got, set)
		}
	}
}

func TestStringList_ScanValue(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["x","y"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"x", "y"}) {
		t.Errorf("Scan = %v", l)
	}
	if err := l.Scan(nil); err != nil || l != nil {
		t.Errorf("Scan(nil) = %v, %v; want nil, nil", l, err)
	}
	if err := l.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}

	v, err := StringList(nil).Value()
	if err != nil || string(v.([]byte)) != "[]" {
		t.Errorf("nil Value() = %s, %v; want []", v, err)
	}
}

func TestVideos_ScanValue(t *testing.T) {
	var v Videos
	if err := v.Scan(`[{"url":"u","caption":"c"}]`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(v) != 1 || v[0].URL != "u" || v[0].Caption != "c" {
		t.Errorf("Scan = %+v", v)
	}
	if err := v.Scan([]byte(`{bad`)); err == nil {
		t.Error("expected unmarshal error")
	}
	raw, err := Videos{{URL: "u"}}.Value()
	if err != nil || string(raw.([]byte)) != `[{"url":"u","caption":""}]` {
		t.Errorf("Value() = %s, %v", raw, err)
	}
}
