package keywords

import (
	"fmt"
	"strings"
	"testing"

	"github.com/quickcart/storesearch/internal/models"
)

func keywordSetOf(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, kw := range list {
		set[kw] = true
	}
	return set
}

func TestGenerate_NamePass(t *testing.T) {
	product := &models.Product{Name: "iPhone 15 Pro"}
	got := keywordSetOf(Generate(product))

	// Every name token longer than 2 chars is kept as-is.
	for _, want := range []string{"iphone", "pro"} {
		if !got[want] {
			t.Errorf("missing name token %q", want)
		}
	}
	// "15" is too short.
	if got["15"] {
		t.Error("short name token should be dropped")
	}
}

func TestGenerate_NameTokenSynonyms(t *testing.T) {
	product := &models.Product{Name: "Gaming Laptop Stand"}
	got := keywordSetOf(Generate(product))

	// "laptop" is a canonical term, so its group rides along.
	for _, want := range []string{"laptop", "notebook", "ultrabook", "stand"} {
		if !got[want] {
			t.Errorf("missing keyword %q", want)
		}
	}
}

func TestGenerate_DescriptionAsymmetry(t *testing.T) {
	product := &models.Product{
		Name:        "Stand",
		Description: "A wonderful accessory for your phone",
	}
	got := keywordSetOf(Generate(product))

	// Description tokens that are canonical terms contribute themselves and
	// their group.
	for _, want := range []string{"phone", "mobile", "smartphone"} {
		if !got[want] {
			t.Errorf("missing keyword %q from description synonym", want)
		}
	}
	// Plain description words are dropped, unlike name tokens.
	for _, absent := range []string{"wonderful", "accessory", "your"} {
		if got[absent] {
			t.Errorf("plain description word %q should not become a keyword", absent)
		}
	}
}

func TestGenerate_CategoryConcepts(t *testing.T) {
	product := &models.Product{
		Name:     "USB Cable",
		Category: &models.Category{Name: "Electronics"},
	}
	got := keywordSetOf(Generate(product))
	for _, want := range []string{"gadget", "device", "tech"} {
		if !got[want] {
			t.Errorf("missing concept word %q", want)
		}
	}
}

func TestGenerate_TagsLowercased(t *testing.T) {
	product := &models.Product{
		Name: "Mat",
		Tags: []string{"Yoga", "FITNESS"},
	}
	got := keywordSetOf(Generate(product))
	if !got["yoga"] || !got["fitness"] {
		t.Errorf("tags should be lower-cased keywords, got %v", got)
	}
}

func TestGenerate_CapAndOrder(t *testing.T) {
	tokens := make([]string, 80)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token%02d", i)
	}
	product := &models.Product{Name: strings.Join(tokens, " ")}

	got := Generate(product)
	if len(got) != MaxKeywords {
		t.Fatalf("expected %d keywords, got %d", MaxKeywords, len(got))
	}
	// Insertion order: the first name tokens win.
	if got[0] != "token00" || got[MaxKeywords-1] != fmt.Sprintf("token%02d", MaxKeywords-1) {
		t.Errorf("truncation should keep the first accumulated entries, got %v...%v", got[0], got[len(got)-1])
	}
}

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(nil); got != nil {
		t.Errorf("Generate(nil) = %v", got)
	}
	if got := Generate(&models.Product{}); len(got) != 0 {
		t.Errorf("Generate(empty product) = %v", got)
	}
}

func TestGenerate_NoDuplicates(t *testing.T) {
	product := &models.Product{
		Name:        "Phone Phone",
		Description: "phone phone phone",
		Tags:        []string{"phone"},
	}
	got := Generate(product)
	seen := make(map[string]bool)
	for _, kw := range got {
		if seen[kw] {
			t.Errorf("duplicate keyword %q", kw)
		}
		seen[kw] = true
	}
}
