package finetune

import (
	"strings"
	"testing"
)

const goodRecord = `{"messages":[{"role":"system","content":"You are helpful."},{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`

func TestValidateTrainingData_Valid(t *testing.T) {
	data := strings.Join([]string{goodRecord, "", goodRecord, goodRecord}, "\n")
	n, err := ValidateTrainingData([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("records=%d, want 3", n)
	}
}

func TestValidateTrainingData_InvalidJSON(t *testing.T) {
	data := goodRecord + "\n{not json}\n"
	_, err := ValidateTrainingData([]byte(data))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err=%v", err)
	}
}

func TestValidateTrainingData_MissingMessages(t *testing.T) {
	_, err := ValidateTrainingData([]byte(`{"prompt":"old format"}`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateTrainingData_BadRole(t *testing.T) {
	bad := `{"messages":[{"role":"robot","content":"beep"}]}`
	_, err := ValidateTrainingData([]byte(bad))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateTrainingData_EmptyMessages(t *testing.T) {
	_, err := ValidateTrainingData([]byte(`{"messages":[]}`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateTrainingData_Empty(t *testing.T) {
	if _, err := ValidateTrainingData([]byte("\n\n")); err == nil {
		t.Fatal("expected error")
	}
}
