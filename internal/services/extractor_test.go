package services

import "testing"

func TestExtractNutritionFullReply(t *testing.T) {
	reply := "A bold choice. One samosa, the deep-fried triangle of regret. " +
		"Calories: 262, Protein: 3.5g, Fat: 17g, Carbs: 24g, Fiber: 2g"

	record, ok := ExtractNutrition(reply)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if record.Calories != 262 {
		t.Errorf("expected calories 262, got %v", record.Calories)
	}
	if record.Protein != 3.5 {
		t.Errorf("expected protein 3.5, got %v", record.Protein)
	}
	if record.Fat != 17 {
		t.Errorf("expected fat 17, got %v", record.Fat)
	}
	if record.Carbs != 24 {
		t.Errorf("expected carbs 24, got %v", record.Carbs)
	}
	if record.Fiber != 2 {
		t.Errorf("expected fiber 2, got %v", record.Fiber)
	}
}

func TestExtractNutritionMissingFieldsDefaultToZero(t *testing.T) {
	record, ok := ExtractNutrition("Calories: 250, Protein: 10g, Fat: 5g")
	if !ok {
		t.Fatalf("partial reply should not count as extraction failure")
	}
	if record.Carbs != 0 {
		t.Errorf("expected carbs 0, got %v", record.Carbs)
	}
	if record.Fiber != 0 {
		t.Errorf("expected fiber 0, got %v", record.Fiber)
	}
}

func TestExtractNutritionCaseInsensitiveFirstMatch(t *testing.T) {
	record, ok := ExtractNutrition("calories: 100 and later Calories: 900")
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if record.Calories != 100 {
		t.Errorf("expected first occurrence 100, got %v", record.Calories)
	}
}

func TestExtractNutritionAllFieldsAbsent(t *testing.T) {
	record, ok := ExtractNutrition("I have no idea what that food is.")
	if ok {
		t.Fatalf("expected extraction failure for reply without any field")
	}
	if !record.IsZero() {
		t.Fatalf("expected zero record, got %+v", record)
	}
}

func TestExtractDescription(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "picks second to last sentence",
			reply: "Ah, a banana. Nature's own snack bar. Calories: 105, Protein: 1g",
			want:  "Nature's own snack bar.",
		},
		{
			name:  "single sentence returned as is",
			reply: "Just a banana.",
			want:  "Just a banana.",
		},
		{
			name:  "empty reply yields placeholder",
			reply: "",
			want:  "No description available.",
		},
		{
			name:  "periods only yields placeholder",
			reply: "...",
			want:  "No description available.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractDescription(tc.reply); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
