package usecase

import "testing"

func testSchema() Schema {
	return Schema{Fields: []FieldSpec{
		{Name: "name", Label: "Name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "note", Label: "Note", Kind: FieldText, MinLen: 10},
		{Name: "color", Label: "Color", Kind: FieldEnum, Enum: []string{"red", "blue"}},
		{Name: "reason", Label: "Reason", Kind: FieldEnum, Discriminant: true, Enum: []string{"a", "b"}},
		{Name: "agree", Label: "Agrees", Kind: FieldYesNo},
	}}
}

func TestValidate_RequiredMissing(t *testing.T) {
	_, issues := Validate(testSchema(), map[string]string{})
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Field != "name" || issues[0].Code != IssueRequired {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
}

func TestValidate_WhitespaceIsAbsent(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name": "Jane Doe",
		"note": "   \t  ",
	})
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if _, ok := form.String("note"); ok {
		t.Fatal("whitespace-only field must be absent")
	}
}

func TestValidate_MinLen(t *testing.T) {
	_, issues := Validate(testSchema(), map[string]string{
		"name": "Jane Doe",
		"note": "short",
	})
	if len(issues) != 1 || issues[0].Code != IssueTooShort || issues[0].Field != "note" {
		t.Fatalf("expected too_short on note, got %v", issues)
	}
}

func TestValidate_LenientEnumCoercedToAbsent(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name":  "Jane Doe",
		"color": "green", // out of set, lenient
	})
	if issues != nil {
		t.Fatalf("lenient enum must not produce issues, got %v", issues)
	}
	if _, ok := form.String("color"); ok {
		t.Fatal("out-of-set lenient enum value must be absent")
	}
}

func TestValidate_EnumCaseSensitive(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name":  "Jane Doe",
		"color": "Red",
	})
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if _, ok := form.String("color"); ok {
		t.Fatal("enum matching must be case-sensitive")
	}
}

func TestValidate_DiscriminantEnumStrict(t *testing.T) {
	_, issues := Validate(testSchema(), map[string]string{
		"name":   "Jane Doe",
		"reason": "zzz",
	})
	if len(issues) != 1 || issues[0].Code != IssueInvalidValue || issues[0].Field != "reason" {
		t.Fatalf("expected invalid_value on reason, got %v", issues)
	}
}

func TestValidate_YesNoNormalization(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name":  "Jane Doe",
		"agree": "yes",
	})
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	v, ok := form.Bool("agree")
	if !ok || !v {
		t.Fatalf("agree = (%v,%v), want (true,true)", v, ok)
	}

	// Anything other than yes/no is absent, not an error.
	form, issues = Validate(testSchema(), map[string]string{
		"name":  "Jane Doe",
		"agree": "maybe",
	})
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if _, ok := form.Bool("agree"); ok {
		t.Fatal("non-yes/no answer must be absent")
	}
}

func TestValidate_AllOrNothing(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name":  "Jo", // too short
		"color": "red",
	})
	if len(issues) == 0 {
		t.Fatal("expected issues")
	}
	if !form.Empty() {
		t.Fatal("form must be empty when validation fails")
	}
}

func TestValidate_UnknownKeysIgnored(t *testing.T) {
	form, issues := Validate(testSchema(), map[string]string{
		"name":      "Jane Doe",
		"__proto__": "x",
	})
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if _, ok := form.String("__proto__"); ok {
		t.Fatal("unknown keys must not survive validation")
	}
}
