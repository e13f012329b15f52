// Package merklecap implements the cap-Merkle tree: a binary Merkle tree
// over arity-r field-vector leaves that stops cap_bits levels early and
// publishes 2^cap_bits roots ("the cap") instead of a single root.
//
// Authentication paths within each cap slot are delegated to
// github.com/consensys/gnark-crypto/accumulator/merkletree, the same
// Merkle accumulator gnark-crypto's own FRI implementation commits
// evaluation leaves with. The cap itself — publishing one independent
// tree root per slot instead of compressing all the way to a single
// root — has no analogue in that package and is built here: a tree with
// cap_bits = b is 2^b independent merkletree.Tree instances,
// one per contiguous block of leaves, whose roots form the cap vector.
package merklecap

import (
	"fmt"
	stdhash "hash"

	"github.com/consensys/gnark-crypto/accumulator/merkletree"

	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/hash"
)

// compressHash adapts a Hasher's pairwise Compress into the
// stdlib-shaped hash.Hash the accumulator package combines internal
// nodes with, so a tree built on Poseidon leaves also combines nodes
// with Poseidon rather than an unrelated fixed hash.
type compressHash struct {
	hasher hash.Hasher
	buf    []byte
}

// newAccHash returns a fresh accumulator-compatible hash. A fresh
// instance is required per tree build since the accumulator mutates it
// in place.
func newAccHash(hasher hash.Hasher) stdhash.Hash {
	return &compressHash{hasher: hasher}
}

func (h *compressHash) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

func (h *compressHash) Sum(b []byte) []byte {
	var left, right hash.Digest
	copy(left[:], h.buf[:32])
	copy(right[:], h.buf[32:64])
	out := h.hasher.Compress(left, right)
	return append(b, out[:]...)
}

func (h *compressHash) Reset()         { h.buf = h.buf[:0] }
func (h *compressHash) Size() int      { return 32 }
func (h *compressHash) BlockSize() int { return 64 }

// Opening is a Merkle proof: the opened leaf fiber, its index, the
// sibling path to the leaf's cap slot, and the cap itself.
type Opening struct {
	LeafValues []*field.Element
	LeafIndex  uint64
	Siblings   [][]byte
	Cap        [][]byte
}

// Tree is a cap-Merkle tree over arity-r leaves.
type Tree struct {
	hasher    hash.Hasher
	capBits   int
	leaves    [][]*field.Element
	numLeaves int
	depth     int
	cap       [][]byte
	// leafDigests[i] is hash(sum(leaves[i])), the sum-then-hash leaf
	// convention required by the contract.
	leafDigests [][]byte
	computed    bool
}

// New returns an empty tree that publishes 2^capBits roots.
func New(capBits int, hasher hash.Hasher) *Tree {
	return &Tree{hasher: hasher, capBits: capBits}
}

// Insert appends leaves; later calls accumulate.
func (t *Tree) Insert(leaves [][]*field.Element) error {
	if t.computed {
		return fmt.Errorf("merklecap: cannot insert after compute")
	}
	if len(leaves) == 0 {
		return fmt.Errorf("merklecap: empty insert is forbidden")
	}
	t.leaves = append(t.leaves, leaves...)
	return nil
}

// Compute pads the leaves to the next power of two with zero-vector
// leaves, hashes each leaf via the sum-then-hash convention, and builds
// 2^capBits independent authentication trees whose roots form the cap.
func (t *Tree) Compute() ([][]byte, error) {
	if t.computed {
		return t.cap, nil
	}
	if len(t.leaves) == 0 {
		return nil, fmt.Errorf("merklecap: cannot compute an empty tree")
	}

	n := nextPowerOfTwo(len(t.leaves))
	numCapSlots := 1 << uint(t.capBits)
	if n <= numCapSlots {
		return nil, fmt.Errorf("merklecap: |leaves| must exceed 2^cap_bits (depth >= 1)")
	}

	padded := make([][]*field.Element, n)
	copy(padded, t.leaves)
	arity := 1
	if len(t.leaves) > 0 {
		arity = len(t.leaves[0])
	}
	zeroLeaf := make([]*field.Element, arity)
	for i := range zeroLeaf {
		zeroLeaf[i] = field.Zero()
	}
	for i := len(t.leaves); i < n; i++ {
		padded[i] = zeroLeaf
	}

	digests := make([][]byte, n)
	for i, leaf := range padded {
		digests[i] = t.leafDigest(leaf)
	}

	depth := log2(n) - t.capBits
	if depth < 1 {
		return nil, fmt.Errorf("merklecap: depth must be >= 1 (cap_bits < log2(|leaves|))")
	}
	slotSize := 1 << uint(depth)

	cap := make([][]byte, numCapSlots)
	for s := 0; s < numCapSlots; s++ {
		slotDigests := digests[s*slotSize : (s+1)*slotSize]
		mt := merkletree.New(newAccHash(t.hasher))
		for _, d := range slotDigests {
			mt.Push(d)
		}
		cap[s] = mt.Root()
	}

	t.leaves = padded
	t.numLeaves = n
	t.depth = depth
	t.cap = cap
	t.leafDigests = digests
	t.computed = true
	return cap, nil
}

func (t *Tree) leafDigest(leaf []*field.Element) []byte {
	sum := field.Zero()
	for _, x := range leaf {
		sum = sum.Add(x)
	}
	d := t.hasher.Hash([]*field.Element{sum})
	return append([]byte(nil), d[:]...)
}

// Proof returns the authentication path for leaf i.
func (t *Tree) Proof(i uint64) (*Opening, error) {
	if !t.computed {
		return nil, fmt.Errorf("merklecap: compute must be called before proof")
	}
	if i >= uint64(t.numLeaves) {
		return nil, fmt.Errorf("merklecap: leaf index %d out of range [0,%d)", i, t.numLeaves)
	}

	slotSize := 1 << uint(t.depth)
	slot := i / uint64(slotSize)
	within := i % uint64(slotSize)

	slotDigests := t.leafDigests[slot*uint64(slotSize) : (slot+1)*uint64(slotSize)]
	mt := merkletree.New(newAccHash(t.hasher))
	if err := mt.SetIndex(within); err != nil {
		return nil, fmt.Errorf("merklecap: %w", err)
	}
	for _, d := range slotDigests {
		mt.Push(d)
	}
	_, proofSet, _, _ := mt.Prove()

	// proofSet[0] is the leaf digest itself; the remaining entries are
	// the sibling path, bottom to top. LeafIndex is the tree-global
	// index (not the within-slot index SetIndex consumed), since that
	// is what selects the cap slot via leaf_index >> depth.
	siblings := proofSet[1:]

	return &Opening{
		LeafValues: t.leaves[i],
		LeafIndex:  i,
		Siblings:   siblings,
		Cap:        t.cap,
	}, nil
}

// Cap returns the published cap vector (valid after Compute).
func (t *Tree) Cap() [][]byte {
	return t.cap
}

// Depth returns the per-slot authentication path depth (valid after
// Compute).
func (t *Tree) Depth() int {
	return t.depth
}

// Verify recomputes the leaf digest from the opening's leaf fiber and
// checks it authenticates to the cap slot selected by leaf_index >>
// depth.
func Verify(o *Opening, depth int, hasher hash.Hasher) bool {
	sum := field.Zero()
	for _, x := range o.LeafValues {
		sum = sum.Add(x)
	}
	leafDigest := hasher.Hash([]*field.Element{sum})

	slot := o.LeafIndex >> uint(depth)
	if slot >= uint64(len(o.Cap)) {
		return false
	}

	proofSet := make([][]byte, 0, len(o.Siblings)+1)
	proofSet = append(proofSet, leafDigest[:])
	proofSet = append(proofSet, o.Siblings...)

	numLeaves := uint64(1) << uint(depth)
	return merkletree.VerifyProof(newAccHash(hasher), o.Cap[slot], proofSet, o.LeafIndex&(numLeaves-1), numLeaves)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func log2(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}
