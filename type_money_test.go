package equity

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{M(10.5, "EUR"), "€10.50"},
		{M(-10.5, "EUR"), "-€10.50"},
		{M(1_000_000, "USD"), "$1,000,000.00"},
		{M(0, "EUR"), "€0.00"},
	}
	for _, tt := range tests {
		if got := tt.money.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{M(10.5, "EUR"), "+€10.50"},
		{M(-10.5, "EUR"), "-€10.50"},
		{M(0, "EUR"), "-"},
	}
	for _, tt := range tests {
		if got := tt.money.SignedString(); got != tt.want {
			t.Errorf("SignedString() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyEqual(t *testing.T) {
	if !M(10.5, "EUR").Equal(M(10.5, "EUR")) {
		t.Error("Equal() = false for identical money")
	}
	if M(10.5, "EUR").Equal(M(10.5, "USD")) {
		t.Error("Equal() = true across currencies")
	}
	if got := M(10.5, "EUR").Neg(); !got.IsNegative() {
		t.Errorf("Neg() = %v, want negative", got)
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	b, err := M(10.5, "EUR").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"currency":"EUR","amount":"10.5"}`
	if string(b) != want {
		t.Errorf("MarshalJSON() = %s, want %s", b, want)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(5).String(); got != "5.00%" {
		t.Errorf("String() = %q, want 5.00%%", got)
	}
	if got := Percent(5).SignedString(); got != "+5.00%" {
		t.Errorf("SignedString() = %q, want +5.00%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
	if !Percent(5).Equal(Percent(5.00001)) {
		t.Error("Equal() = false within precision")
	}
	if Percent(5).Equal(Percent(5.1)) {
		t.Error("Equal() = true outside precision")
	}
}
