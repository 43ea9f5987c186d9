package potensidto

import (
	"reflect"
	"testing"
)

func TestTrimEmpty(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil tetap nil", nil, nil},
		{"item kosong dibuang", []string{"Gazebo", "", "  ", "Toilet"}, []string{"Gazebo", "Toilet"}},
		{"spasi tepi dirapikan", []string{"  Parkir Luas  "}, []string{"Parkir Luas"}},
		{"semua kosong", []string{"", "   "}, []string{}},
	}
	for _, c := range cases {
		got := trimEmpty(c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: trimEmpty(%v) = %v, harusnya %v", c.name, c.input, got, c.want)
		}
	}
}

func TestWisataCreateInputNormalize(t *testing.T) {
	input := &WisataCreateInput{Fasilitas: []string{" Mushola ", "", "Warung"}}
	input.Normalize()
	want := []string{"Mushola", "Warung"}
	if !reflect.DeepEqual(input.Fasilitas, want) {
		t.Errorf("Fasilitas setelah Normalize = %v, harusnya %v", input.Fasilitas, want)
	}
}

func TestKearifanLokalCreateInputNormalize(t *testing.T) {
	input := &KearifanLokalCreateInput{
		Praktik: []string{"Gotong royong", " "},
		Manfaat: []string{"", "Kerukunan warga"},
	}
	input.Normalize()
	if !reflect.DeepEqual(input.Praktik, []string{"Gotong royong"}) {
		t.Errorf("Praktik setelah Normalize = %v", input.Praktik)
	}
	if !reflect.DeepEqual(input.Manfaat, []string{"Kerukunan warga"}) {
		t.Errorf("Manfaat setelah Normalize = %v", input.Manfaat)
	}
}
