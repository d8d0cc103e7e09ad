package hufftree

import (
	"testing"
)

func countFor(t *testing.T, data []byte) *FrequencyTable {
	t.Helper()
	var ft FrequencyTable
	if err := ft.Count(NewByteSource(data)); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	return &ft
}

func TestBuildTree_SingleRepeatedByte(t *testing.T) {
	ft := countFor(t, []byte("aaa"))
	ct := BuildTree(ft).Codes()

	var leaves int
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if ct.Code(symbol).Size != 0 {
			leaves++
		}
	}
	if leaves != 2 {
		t.Errorf("expected 2 leaves, got %d", leaves)
	}
	if size := ct.Code('a').Size; size != 1 {
		t.Errorf("expected a 1-bit code for 'a', got %d bits", size)
	}
	if size := ct.Code(PseudoEOF).Size; size != 1 {
		t.Errorf("expected a 1-bit code for PseudoEOF, got %d bits", size)
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	ft := countFor(t, nil)
	ct := BuildTree(ft).Codes()

	if size := ct.Code(PseudoEOF).Size; size != 1 {
		t.Errorf("expected a 1-bit code for PseudoEOF, got %d bits", size)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	first := BuildTree(countFor(t, data)).Codes()
	second := BuildTree(countFor(t, data)).Codes()

	if *first != *second {
		t.Errorf("two builds over the same input produced different code tables")
	}
}

func TestBuildTree_MinimalityBound(t *testing.T) {
	var ft FrequencyTable
	ft.Add('x', 1000)
	ft.Add('y', 1)
	ft.Add(PseudoEOF, 1)

	ct := BuildTree(&ft).Codes()
	frequent := ct.Code('x').Size
	rare := ct.Code('y').Size
	if frequent > rare {
		t.Errorf("frequent symbol has a %d-bit code, rare symbol only %d bits", frequent, rare)
	}
}

func TestBuildTree_WeightInvariant(t *testing.T) {
	tree := BuildTree(countFor(t, []byte("abracadabra")))

	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			return
		}
		if sum := n.left.weight + n.right.weight; n.weight != sum {
			t.Errorf("internal node weight %d, children sum to %d", n.weight, sum)
		}
		walk(n.left)
		walk(n.right)
	}
	walk(tree.root)
}
