// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func compareItems(a stringItem, b stringItem) int {
	return strings.Compare(a.s, b.s)
}

func newStringTree() *avl.Tree[stringItem] {
	return avl.New(compareItems, nil)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"3630"}, {"1427"}, {"5843"}, {"9549"}, {"5433"},
		{"1274"}, {"9034"}, {"4724"}, {"6179"}, {"5072"},
		{"9272"}, {"4030"}, {"4205"}, {"3363"}, {"8582"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
		{"2791"}, {"1504"}, {"3469"}, {"9701"}, {"5077"},
		{"7928"}, {"7978"}, {"5383"}, {"4319"}, {"8197"},
		{"9227"}, {"1166"}, {"4216"}, {"0866"}, {"1791"},
		{"5395"}, {"4310"}, {"4452"}, {"6140"}, {"1494"},
		{"8859"}, {"3394"}, {"5507"}, {"7295"}, {"5408"},
		{"7789"}, {"8237"}, {"6990"}, {"6882"}, {"8243"},
		{"8894"}, {"4352"}, {"6727"}, {"7019"}, {"3126"},
		{"3102"}, {"2948"}, {"8242"}, {"5027"}, {"8892"},
		{"3492"}, {"1323"}, {"1101"}, {"4526"}, {"5177"},
		{"6175"}, {"6664"}, {"2742"}, {"6094"}, {"9877"},
		{"2534"}, {"2105"}, {"6588"}, {"9982"}, {"3696"},
		{"3480"}, {"2244"}, {"7487"}, {"2844"}, {"3199"},
		{"5829"}, {"6952"}, {"6915"}, {"0905"}, {"7615"},
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// insert the whole list, then for every prefix length delete the
// prefix and the remainder checking the tree after each stage
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})
		destroyed := make(map[stringItem]int)

		tree := avl.New(compareItems, func(item stringItem) {
			destroyed[item] += 1
		})
		for _, key := range addList {
			err := tree.Insert(key)
			if nil != err && fault.ErrAlreadyExists != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
		}

		if err := tree.Check(); nil != err {
			t.Errorf("add: inconsistent tree: %s", err)
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if err := tree.Remove(key); nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if tree.Find(key) {
				t.Fatalf("delete: %q  still found", key)
			}
		}

		if err := tree.Check(); nil != err {
			t.Errorf("delete: inconsistent tree: %s", err)
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if err := tree.Remove(key); nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
		}
		if !tree.IsEmpty() || 0 != tree.Size() {
			t.Errorf("remainder: remaining nodes: %d", tree.Size())
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}

		for key, n := range destroyed {
			if 1 != n {
				t.Fatalf("item: %q destroyed: %d times", key, n)
			}
		}
		if len(alreadyDeleted) != len(destroyed) {
			t.Fatalf("destroyed: %d items  expected: %d", len(destroyed), len(alreadyDeleted))
		}
	}
}

// traverse the tree with both Foreach and All to check ordering
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	tree.Foreach(func(item stringItem) {
		if n >= len(expected) {
			t.Fatalf("foreach: extra item: %q", item)
		}
		if item.s != expected[n] {
			t.Fatalf("foreach item: actual: %q  expected: %q", item, expected[n])
		}
		n += 1
	})
	if n != len(expected) {
		t.Fatalf("foreach count: actual: %d  expected: %d", n, len(expected))
	}

	n = 0
	for item := range tree.All() {
		if item.s != expected[n] {
			t.Fatalf("all item: actual: %q  expected: %q", item, expected[n])
		}
		n += 1
	}
	if n != tree.Size() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Size(), n)
	}

	first, ok := tree.First()
	if !ok || first.s != expected[0] {
		t.Fatalf("first: actual: %q  expected: %q", first, expected[0])
	}
	last, ok := tree.Last()
	if !ok || last.s != expected[len(expected)-1] {
		t.Fatalf("last: actual: %q  expected: %q", last, expected[len(expected)-1])
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(stringItem{key})
	}

	if !tree.IsEmpty() {
		t.Errorf("remainder: remaining nodes")
		depth := tree.Print(os.Stdout)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Size() {
		t.Fatalf("remaining count not zero: %d", tree.Size())
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	d := make([]stringItem, toDelete)

	inserted := 0
	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		switch err := tree.Insert(key); err {
		case nil:
			inserted += 1
			if !tree.Find(key) {
				t.Fatalf("inserted key: %q not found", key)
			}
		case fault.ErrAlreadyExists:
		default:
			t.Fatalf("insert: %q  error: %s", key, err)
		}
	}
	if inserted != tree.Size() {
		t.Fatalf("size: %d  expected: %d", tree.Size(), inserted)
	}

	if err := tree.Check(); nil != err {
		depth := tree.Print(os.Stdout)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	removed := 0
	for _, key := range d {
		switch err := tree.Remove(key); err {
		case nil:
			removed += 1
		case fault.ErrNotFound:
		default:
			t.Fatalf("remove: %q  error: %s", key, err)
		}
		if tree.Find(key) {
			t.Fatalf("removed key: %q still found", key)
		}
		if err := tree.Check(); nil != err {
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatalf("inconsistent tree: %s", err)
		}
	}
	if removed+tree.Size() != inserted {
		t.Fatalf("removed: %d + size: %d  expected: %d", removed, tree.Size(), inserted)
	}

	// AVL bound: h < 1.4405 log2(n + 2) - 0.3277
	limit := 1.4405*math.Log2(float64(tree.Size()+2)) - 0.3277
	if depth := float64(maxDepth(tree)); depth-1 > limit {
		t.Fatalf("height: %v exceeds bound: %v", depth-1, limit)
	}

	// add back the test value
	testKey := stringItem{"500"}
	if err := tree.Insert(testKey); nil != err {
		t.Fatalf("insert test key error: %s", err)
	}
	if err := tree.Insert(testKey); fault.ErrAlreadyExists != err {
		t.Fatalf("duplicate insert error: %v  expected: %s", err, fault.ErrAlreadyExists)
	}
	if !tree.Find(testKey) {
		t.Fatalf("could not find test key: %q", testKey)
	}

	size := tree.Size()
	if err := tree.Remove(testKey); nil != err {
		t.Fatalf("remove test key error: %s", err)
	}
	if err := tree.Remove(testKey); fault.ErrNotFound != err {
		t.Fatalf("second remove error: %v  expected: %s", err, fault.ErrNotFound)
	}
	if size-1 != tree.Size() {
		t.Fatalf("size: %d  expected: %d", tree.Size(), size-1)
	}
	if tree.Find(testKey) {
		t.Fatalf("test key not deleted: %q", testKey)
	}
}

// number of levels, computed from the print routine output
func maxDepth(tree *avl.Tree[stringItem]) int {
	var b strings.Builder
	return tree.Print(&b)
}
