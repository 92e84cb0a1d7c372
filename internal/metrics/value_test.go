package metrics

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "integer", input: "4", want: IntValue(4)},
		{name: "negative integer", input: "-12", want: IntValue(-12)},
		{name: "float", input: "0.7", want: FloatValue(0.7)},
		{name: "plain string", input: "4k", want: StringValue("4k")},
		{name: "quoted number stays string", input: `"4"`, want: StringValue("4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Value
			if err := yaml.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %s (kind %d), want %s (kind %d)", got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestValueUnmarshalRejectsNonScalar(t *testing.T) {
	var got Value
	if err := yaml.Unmarshal([]byte("[1, 2]"), &got); err == nil {
		t.Fatal("expected error for sequence value")
	}
}

func TestValueAsInt(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    int64
		wantErr bool
	}{
		{name: "int", value: IntValue(8), want: 8},
		{name: "numeric string", value: StringValue("16"), want: 16},
		{name: "non numeric string", value: StringValue("4k"), wantErr: true},
		{name: "float", value: FloatValue(4.0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.AsInt()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AsInt: %v", err)
			}
			if got != tt.want {
				t.Fatalf("AsInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContextValidate(t *testing.T) {
	ok := Context{
		ContextKeyFname:     StringValue("a.log"),
		ContextKeyTimestamp: IntValue(1),
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	missing := Context{ContextKeyFname: StringValue("a.log")}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing timestamp")
	}
}

func TestContextReduced(t *testing.T) {
	ctx := Context{
		"bs":                StringValue("4k"),
		"iodepth":           IntValue(4),
		ContextKeyFname:     StringValue("a.log"),
		ContextKeyTimestamp: IntValue(1),
	}
	reduced := ctx.Reduced(XKeyIODepth)
	want := Context{"bs": StringValue("4k")}
	if !reduced.Equal(want) {
		t.Fatalf("Reduced = %v, want %v", reduced, want)
	}
	// Original is untouched.
	if len(ctx) != 4 {
		t.Fatal("Reduced mutated its receiver")
	}
}
