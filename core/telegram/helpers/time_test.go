package helpers

import "testing"

func TestParseDateStrict(t *testing.T) {
	if d, ok := ParseDate("2024-05-01"); !ok {
		t.Fatal("2024-05-01 should parse")
	} else if d.Year() != 2024 || d.Month() != 5 || d.Day() != 1 {
		t.Fatalf("parsed wrong date: %v", d)
	}
	if _, ok := ParseDate(" 2024-05-01 "); !ok {
		t.Fatal("surrounding whitespace should be tolerated")
	}
	for _, bad := range []string{"2024/05/01", "01-05-2024", "2024-13-01", "2024-02-30", "tomorrow", ""} {
		if _, ok := ParseDate(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestParseClockStrict(t *testing.T) {
	if c, ok := ParseClock("23:59"); !ok {
		t.Fatal("23:59 should parse")
	} else if c.Hour() != 23 || c.Minute() != 59 {
		t.Fatalf("parsed wrong time: %v", c)
	}
	if _, ok := ParseClock("00:00"); !ok {
		t.Fatal("00:00 should parse")
	}
	for _, bad := range []string{"25:61", "9:5:0", "noon", ""} {
		if _, ok := ParseClock(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}
