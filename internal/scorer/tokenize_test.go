package scorer

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	got := Tokenize("Hello, world!")
	want := []string{"hello", "world"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", got)
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	if got := Tokenize("   \n   \t   \r\n   "); len(got) != 0 {
		t.Errorf("expected no tokens for whitespace input, got %v", got)
	}
}

func TestTokenizePunctuationOnly(t *testing.T) {
	if got := Tokenize("!@#$%^&*()_+{}[]|\\:;\"'<>,.?/~`"); len(got) != 0 {
		t.Errorf("expected no tokens for punctuation input, got %v", got)
	}
}

func TestTokenizeNumbersDropped(t *testing.T) {
	if got := Tokenize("123 456 789 0"); len(got) != 0 {
		t.Errorf("expected no tokens for numeric input, got %v", got)
	}
}

func TestTokenizeIrregularWhitespace(t *testing.T) {
	got := Tokenize("alpha\t\tbeta    gamma\ndelta")
	want := []string{"alpha", "beta", "gamma", "delta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeCaseFolding(t *testing.T) {
	got := Tokenize("TeSt DoCuMeNt")
	want := []string{"test", "document"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeShortTokensDropped(t *testing.T) {
	got := Tokenize("a big cat")
	want := []string{"big", "cat"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeOverlongTokensDropped(t *testing.T) {
	if got := Tokenize("supercalifragilisticexpialidocious"); len(got) != 0 {
		t.Errorf("expected 34-rune token to be dropped, got %v", got)
	}
}

func TestTokenizeArabicDiacriticsStripped(t *testing.T) {
	got := Tokenize("بِسْمِ اللَّهِ")
	want := []string{"بسم", "الله"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeDiacriticsOnly(t *testing.T) {
	if got := Tokenize("َُِّْ"); len(got) != 0 {
		t.Errorf("expected no tokens for harakat-only input, got %v", got)
	}
}

func TestTokenizeTatweelStripped(t *testing.T) {
	got := Tokenize("كتـــاب")
	want := []string{"كتاب"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeLatinAccentsStripped(t *testing.T) {
	got := Tokenize("niño café")
	want := []string{"nino", "cafe"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeEmojiDropped(t *testing.T) {
	got := Tokenize("testing unicode 🎉 party 😀")
	want := []string{"testing", "unicode", "party"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeMixedScripts(t *testing.T) {
	got := Tokenize("Hello مرحبا World")
	want := []string{"hello", "مرحبا", "world"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeMixedSpecialChars(t *testing.T) {
	got := Tokenize("Hello! @World# $This% ^Is& *Test+")
	want := []string{"hello", "world", "this", "is", "test"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeDigitsSplitWords(t *testing.T) {
	got := Tokenize("word1word2")
	want := []string{"word", "word"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
