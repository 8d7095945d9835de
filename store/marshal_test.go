package store

import (
	"database/sql"
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

	out, err := parseTime(formatTime(in))
	if err != nil {
		t.Fatalf("parseTime() failed: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestFormatTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	local := time.Date(2025, 3, 14, 1, 0, 0, 0, loc)
	utc := local.UTC()

	if got, want := formatTime(local), formatTime(utc); got != want {
		t.Errorf("formatTime(local) = %q, want %q", got, want)
	}
}

func TestParseTime_Invalid(t *testing.T) {
	if _, err := parseTime("not a timestamp"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestNullableTimeRoundTrip(t *testing.T) {
	if got := formatNullableTime(nil); got != nil {
		t.Errorf("formatNullableTime(nil) = %v, want nil", got)
	}

	in := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)
	formatted, ok := formatNullableTime(&in).(string)
	if !ok {
		t.Fatal("formatNullableTime() did not return a string for non-nil input")
	}

	out, err := parseNullableTime(sql.NullString{String: formatted, Valid: true})
	if err != nil {
		t.Fatalf("parseNullableTime() failed: %v", err)
	}
	if out == nil || !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}

	null, err := parseNullableTime(sql.NullString{})
	if err != nil {
		t.Fatalf("parseNullableTime(NULL) failed: %v", err)
	}
	if null != nil {
		t.Errorf("parseNullableTime(NULL) = %v, want nil", null)
	}
}

func TestMarshalMetadata_Deterministic(t *testing.T) {
	m := map[string]string{
		"zebra": "z",
		"apple": "a",
		"mango": "m",
	}

	first, err := marshalMetadata(m)
	if err != nil {
		t.Fatalf("marshalMetadata() failed: %v", err)
	}
	want := `{"apple":"a","mango":"m","zebra":"z"}`
	if first != want {
		t.Errorf("marshalMetadata() = %q, want %q", first, want)
	}

	for i := 0; i < 10; i++ {
		again, err := marshalMetadata(m)
		if err != nil {
			t.Fatalf("marshalMetadata() failed: %v", err)
		}
		if again != first {
			t.Errorf("iteration %d produced %q, want %q", i, again, first)
		}
	}
}

func TestMarshalMetadata_NoHTMLEscaping(t *testing.T) {
	got, err := marshalMetadata(map[string]string{
		"previous_content": "fees < cap & taxes > zero",
	})
	if err != nil {
		t.Fatalf("marshalMetadata() failed: %v", err)
	}
	want := `{"previous_content":"fees < cap & taxes > zero"}`
	if got != want {
		t.Errorf("marshalMetadata() = %q, want %q", got, want)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	in := map[string]string{"similarity": "0.8710", "previous_content": "old text"}

	data, err := marshalMetadata(in)
	if err != nil {
		t.Fatalf("marshalMetadata() failed: %v", err)
	}
	out, err := unmarshalMetadata(data)
	if err != nil {
		t.Fatalf("unmarshalMetadata() failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d entries, want %d", len(out), len(in))
	}
	for k, v := range in {
		if out[k] != v {
			t.Errorf("out[%q] = %q, want %q", k, out[k], v)
		}
	}
}

func TestMetadataEmpty(t *testing.T) {
	data, err := marshalMetadata(nil)
	if err != nil {
		t.Fatalf("marshalMetadata(nil) failed: %v", err)
	}
	if data != "{}" {
		t.Errorf("marshalMetadata(nil) = %q, want {}", data)
	}

	out, err := unmarshalMetadata("{}")
	if err != nil {
		t.Fatalf("unmarshalMetadata() failed: %v", err)
	}
	if out != nil {
		t.Errorf("unmarshalMetadata({}) = %v, want nil", out)
	}
}

func TestClauseIDsRoundTrip(t *testing.T) {
	in := []string{"cl-c", "cl-a", "cl-b"} // order preserved, not sorted

	data, err := marshalClauseIDs(in)
	if err != nil {
		t.Fatalf("marshalClauseIDs() failed: %v", err)
	}
	if data != `["cl-c","cl-a","cl-b"]` {
		t.Errorf("marshalClauseIDs() = %q", data)
	}

	out, err := unmarshalClauseIDs(data)
	if err != nil {
		t.Fatalf("unmarshalClauseIDs() failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d ids, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], in[i])
		}
	}
}

func TestClauseIDsEmpty(t *testing.T) {
	data, err := marshalClauseIDs(nil)
	if err != nil {
		t.Fatalf("marshalClauseIDs(nil) failed: %v", err)
	}
	if data != "[]" {
		t.Errorf("marshalClauseIDs(nil) = %q, want []", data)
	}

	out, err := unmarshalClauseIDs("[]")
	if err != nil {
		t.Fatalf("unmarshalClauseIDs() failed: %v", err)
	}
	if out != nil {
		t.Errorf("unmarshalClauseIDs([]) = %v, want nil", out)
	}
}
