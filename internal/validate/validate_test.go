package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"admin@pygextintores.cl", true},
		{"  cliente@example.com  ", true},
		{"sin-arroba", false},
		{"@example.com", false},
		{"a@b", false},
		{"", false},
	}
	for _, c := range cases {
		if _, ok := Email(c.in); ok != c.ok {
			t.Errorf("Email(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
	if got, _ := Email(" x@example.com "); got != "x@example.com" {
		t.Errorf("Email did not trim: %q", got)
	}
}

func TestPassword(t *testing.T) {
	if Password("") {
		t.Error("empty password accepted")
	}
	if !Password("x") {
		t.Error("one-char password rejected")
	}
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	if Password(string(long)) {
		t.Error("73-byte password accepted, bcrypt caps at 72")
	}
	if !Password(string(long[:72])) {
		t.Error("72-byte password rejected")
	}
}

func TestID(t *testing.T) {
	for _, good := range []string{"1", "10", "custom-5e1c", "a_b-C9"} {
		if _, ok := ID(good); !ok {
			t.Errorf("ID(%q) rejected", good)
		}
	}
	for _, bad := range []string{"", "   ", "id with space", "id/../x", "á"} {
		if _, ok := ID(bad); ok {
			t.Errorf("ID(%q) accepted", bad)
		}
	}
}

func TestQty(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"0", 0},
		{"-2", 0},
		{"abc", 0},
		{"", 0},
		{"150", 99},
	}
	for _, c := range cases {
		if got := Qty(c.in); got != c.want {
			t.Errorf("Qty(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPrice(t *testing.T) {
	if n, ok := Price("45000"); !ok || n != 45000 {
		t.Errorf("Price(45000) = %d, %v", n, ok)
	}
	for _, bad := range []string{"-1", "abc", ""} {
		if _, ok := Price(bad); ok {
			t.Errorf("Price(%q) accepted", bad)
		}
	}
}

func TestStock(t *testing.T) {
	if n, ok := Stock(""); !ok || n != nil {
		t.Errorf("Stock(\"\") = %v, %v; want nil, true", n, ok)
	}
	if n, ok := Stock("12"); !ok || n == nil || *n != 12 {
		t.Errorf("Stock(12) = %v, %v", n, ok)
	}
	for _, bad := range []string{"-3", "x"} {
		if _, ok := Stock(bad); ok {
			t.Errorf("Stock(%q) accepted", bad)
		}
	}
}
