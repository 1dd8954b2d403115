// Command rbtreedemo builds an intrusive red-black tree from a list of
// integers and prints it, along with its min/max and a validity check. It
// is the Go descendant of the reference library's example/main.c driver,
// trimmed to a single deterministic report instead of a randomized
// benchmark.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-intrusive/rbtree"
	"github.com/go-intrusive/rbtree/rbcmp"
)

type record struct {
	node rbtree.Node[record]
	x    int
}

func (r *record) String() string {
	return strconv.Itoa(r.x)
}

func main() {
	var nums string
	flag.StringVar(&nums, "nums", "", "comma-separated integers (reads stdin if empty)")
	flag.Parse()

	values, err := readValues(nums)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rbtreedemo:", err)
		os.Exit(1)
	}

	cmp := func(a, b *record) int { return rbcmp.Ordered[int]()(&a.x, &b.x) }

	var tree rbtree.LeftRightCached[record]
	records := make([]record, len(values))
	for i, v := range values {
		records[i].x = v
		rbtree.NodeInit(&records[i].node, &records[i])
		tree.Insert(&records[i].node, cmp)
	}

	fmt.Print(tree.String())

	if min := tree.Min(); min != nil {
		fmt.Println("min:", min.Owner().x)
	}
	if max := tree.Max(); max != nil {
		fmt.Println("max:", max.Owner().x)
	}
	if err := tree.Check(cmp); err != nil {
		fmt.Fprintln(os.Stderr, "invalid tree:", err)
		os.Exit(1)
	}
	fmt.Println("tree ok")
}

func readValues(nums string) ([]int, error) {
	var fields []string
	if nums != "" {
		fields = strings.Split(nums, ",")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fields = append(fields, strings.Fields(scanner.Text())...)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
