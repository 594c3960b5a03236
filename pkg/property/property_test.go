package property

import (
	"errors"
	"testing"
)

func TestFlags(t *testing.T) {
	tests := []struct {
		flags       Flags
		read, write bool
		playing     bool
		str         string
	}{
		{FlagReadWrite | FlagMutablePlaying, true, true, true, "RW playing"},
		{FlagReadWrite | FlagMutableReady, true, true, false, "RW ready"},
		{FlagReadable | FlagMutablePlaying, true, false, true, "R playing"},
		{FlagWritable | FlagMutableReady, false, true, false, "W ready"},
		{0, false, false, false, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.flags.CanRead(); got != tt.read {
				t.Errorf("CanRead() = %v, want %v", got, tt.read)
			}
			if got := tt.flags.CanWrite(); got != tt.write {
				t.Errorf("CanWrite() = %v, want %v", got, tt.write)
			}
			if got := tt.flags.MutableWhileCapturing(); got != tt.playing {
				t.Errorf("MutableWhileCapturing() = %v, want %v", got, tt.playing)
			}
			if got := tt.flags.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindFloat.String() != "double" || KindEnumeration.String() != "enum" {
		t.Error("unexpected kind names")
	}
	if Kind(99).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}

func TestRanges(t *testing.T) {
	r := IntRange{Min: -5, Max: 5}
	if !r.Contains(-5) || !r.Contains(5) || r.Contains(6) {
		t.Error("IntRange.Contains is not inclusive")
	}
	f := FloatRange{Min: 0, Max: 1}
	if !f.Contains(0.5) || f.Contains(1.01) {
		t.Error("FloatRange.Contains wrong")
	}
}

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptor
		wantErr bool
	}{
		{"integer", Descriptor{Name: "Gain", Kind: KindInteger, Int: &IntRange{}}, false},
		{"integer without range", Descriptor{Name: "Gain", Kind: KindInteger}, true},
		{"float without range", Descriptor{Name: "Gamma", Kind: KindFloat}, true},
		{"enum without type", Descriptor{Name: "Mode", Kind: KindEnumeration}, true},
		{"bool", Descriptor{Name: "ReverseX", Kind: KindBoolean}, false},
		{"string", Descriptor{Name: "DeviceUserID", Kind: KindString}, false},
		{"no name", Descriptor{Kind: KindBoolean}, true},
		{"unknown kind", Descriptor{Name: "X"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	err := (&Descriptor{Name: "X"}).Validate()
	if !errors.Is(err, ErrUnsupportedValueKind) {
		t.Errorf("expected ErrUnsupportedValueKind, got %v", err)
	}
}

func TestQualifiedName(t *testing.T) {
	if got := QualifiedName("Gain", "DigitalAll"); got != "Gain-DigitalAll" {
		t.Errorf("QualifiedName = %q", got)
	}
}

func TestEnumType(t *testing.T) {
	et := &EnumType{
		Name: "GainAuto",
		Values: []EnumValue{
			{Value: 0, Name: "Off"},
			{Value: 1, Name: "Once"},
			{Value: 2, Name: "Continuous"},
		},
	}

	if v, ok := et.ByName("Once"); !ok || v.Value != 1 {
		t.Errorf("ByName(Once) = %v, %v", v, ok)
	}
	if v, ok := et.ByValue(2); !ok || v.Name != "Continuous" {
		t.Errorf("ByValue(2) = %v, %v", v, ok)
	}
	if _, ok := et.ByName("Sometimes"); ok {
		t.Error("ByName should fail for unknown name")
	}
	if _, ok := et.ByValue(7); ok {
		t.Error("ByValue should fail for unknown value")
	}
	names := et.Names()
	if len(names) != 3 || names[2] != "Continuous" {
		t.Errorf("Names() = %v", names)
	}
}

func boolDesc(name string) *Descriptor {
	return &Descriptor{Name: name, Feature: name, Kind: KindBoolean}
}

func TestSchema(t *testing.T) {
	s := NewSchema()

	if err := s.Add(boolDesc("A"), boolDesc("B")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	gainAll := &Descriptor{Name: "Gain-All", Feature: "Gain", Kind: KindInteger, Int: &IntRange{}}
	gainDigital := &Descriptor{Name: "Gain-DigitalAll", Feature: "Gain", Kind: KindInteger, Int: &IntRange{}}
	if err := s.Add(gainAll, gainDigital); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	names := s.Names()
	want := []string{"A", "B", "Gain-All", "Gain-DigitalAll"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if f := s.Features(); len(f) != 3 || f[2] != "Gain" {
		t.Errorf("Features() = %v", f)
	}
	if d, ok := s.Lookup("Gain-All"); !ok || d != gainAll {
		t.Error("Lookup(Gain-All) failed")
	}
	if _, ok := s.Lookup("Gain"); ok {
		t.Error("Lookup(Gain) should fail")
	}

	// Descriptors returns a copy.
	descs := s.Descriptors()
	descs[0] = nil
	if d, _ := s.Lookup("A"); d == nil {
		t.Error("Descriptors must not alias the schema")
	}
}

func TestSchemaAddAllOrNothing(t *testing.T) {
	s := NewSchema()
	if err := s.Add(boolDesc("A")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := s.Add(boolDesc("B"), boolDesc("A"))
	if !errors.Is(err, ErrDuplicateProperty) {
		t.Fatalf("expected ErrDuplicateProperty, got %v", err)
	}
	if _, ok := s.Lookup("B"); ok {
		t.Error("B must not be installed when the batch fails")
	}

	err = s.Add(boolDesc("C"), boolDesc("C"))
	if !errors.Is(err, ErrDuplicateProperty) {
		t.Fatalf("expected ErrDuplicateProperty for repeated name, got %v", err)
	}

	err = s.Add(boolDesc("D"), &Descriptor{Name: "E", Kind: KindInteger})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
