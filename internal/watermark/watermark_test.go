package watermark

import "testing"

func TestArmIsMonotonePerKey(t *testing.T) {
	l := NewLedger()

	w1 := l.Arm("a")
	w2 := l.Arm("a")
	if w2 <= w1 {
		t.Fatalf("Arm not monotone: %d then %d", w1, w2)
	}
	if !l.Matches("a", w2) {
		t.Fatalf("latest token should match")
	}
	if l.Matches("a", w1) {
		t.Fatalf("superseded token should not match")
	}
}

func TestTokensNeverReusedAcrossIncarnations(t *testing.T) {
	l := NewLedger()

	old := l.Arm("k")
	l.Clear("k")
	if _, ok := l.Current("k"); ok {
		t.Fatalf("cleared key still holds a token")
	}

	// Recreation draws a strictly newer token, so the old firing can never
	// match the new incarnation.
	fresh := l.Arm("k")
	if fresh <= old {
		t.Fatalf("recreated key reused token space: old=%d fresh=%d", old, fresh)
	}
	if l.Matches("k", old) {
		t.Fatalf("stale incarnation token matches recreated key")
	}
}

func TestTokensDistinctAcrossKeys(t *testing.T) {
	l := NewLedger()
	wa := l.Arm("a")
	wb := l.Arm("b")
	if wa == wb {
		t.Fatalf("two keys share a token: %d", wa)
	}
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	l.Clear("a")
	l.Clear("a") // idempotent
	if l.Len() != 1 {
		t.Fatalf("Len after clear = %d, want 1", l.Len())
	}
}
