package assets

import (
	"testing"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
)

func TestBundledDefinitionsLoad(t *testing.T) {
	cat, err := catalog.LoadFile(Shots(), DefaultDefinitions)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := cat.Get(1); !ok {
		t.Fatal("player shot 1 missing")
	}
	if cat.Len() < 2 {
		t.Fatalf("only %d shot types bundled", cat.Len())
	}
}
