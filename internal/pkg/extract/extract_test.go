package extract_test

import (
	"reflect"
	"testing"

	"github.com/okruta/routelog/internal/pkg/extract"
)

func newExtractor(t *testing.T) *extract.Extractor {
	t.Helper()
	return extract.New(extract.Config{})
}

func TestExtract_DedupIdenticalLines(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("Доставка:\nвул. Хрещатик 1, Київ\nвул. Хрещатик 1, Київ\n")
	want := []string{"вул. Хрещатик 1, Київ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_OrderPreserved(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("вул. Садова 5, Буча\nвул. Лісова 12, Ірпінь")
	want := []string{"вул. Садова 5, Буча", "вул. Лісова 12, Ірпінь"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestExtract_NoQualifyingLines(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("привіт\nяк справи?\n\nдо зустрічі")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestExtract_CityTokenTruncatesLeadingNoise(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("1) завтра: Гостомель, Свято-Покровська 3")
	want := []string{"Гостомель, Свято-Покровська 3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_FirstCityMatchWins(t *testing.T) {
	e := newExtractor(t)

	// Two city mentions: the cut happens at the first one.
	got := e.Extract("зранку Буча, потім Ірпінь")
	want := []string{"Буча, потім Ірпінь"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_StreetLineWithoutCityGetsSuffix(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("вул. Антоновича 44")
	want := []string{"вул. Антоновича 44, Київ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_StreetTokenWithoutDigitDiscarded(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("зустрінемось на вулиці біля входу")
	if len(got) != 0 {
		t.Errorf("street token without house number should not qualify, got %v", got)
	}
}

func TestExtract_CaseInsensitiveMatching(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("ВУЛ. НАУКИ 8, КИЇВ")
	if len(got) != 1 {
		t.Fatalf("expected one address, got %v", got)
	}
}

func TestExtract_LocativeAbbreviationStripped(t *testing.T) {
	e := newExtractor(t)

	got := e.Extract("м. Ірпінь, Соборна 15")
	want := []string{"Ірпінь, Соборна 15"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_DedupByNormalizedText(t *testing.T) {
	e := newExtractor(t)

	// Both lines normalize to the same address.
	got := e.Extract("Ірпінь, Соборна 15\nм. Ірпінь, Соборна 15")
	want := []string{"Ірпінь, Соборна 15"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_CustomConfig(t *testing.T) {
	e := extract.New(extract.Config{
		CityTokens:  []string{"Львів"},
		DefaultCity: "Львів",
	})

	got := e.Extract("вул. Зелена 20\nЛьвів, Ринок 1\nКиїв, Хрещатик 1")
	want := []string{"вул. Зелена 20, Львів", "Львів, Ринок 1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
