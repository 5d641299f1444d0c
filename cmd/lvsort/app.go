// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvsort/bintree"
	"github.com/katalvlaran/lvsort/sorting"
)

var _FlagAlgo = &cli.StringFlag{
	Name:    "algo",
	Aliases: []string{"a"},
	Usage:   "sorting algorithm, see 'lvsort list'",
	Value:   string(sorting.QuickSort),
}

var _FlagValues = &cli.IntSliceFlag{
	Name:  "values",
	Usage: "comma separated integers, e.g. --values 38,29,-1",
}

var _FlagBucketWidth = &cli.IntFlag{
	Name:  "bucket-width",
	Usage: "value range per bucket for the bucket algorithm",
	Value: sorting.DefaultBucketWidth,
}

var _FlagDigits = &cli.IntFlag{
	Name:  "digits",
	Usage: "fixed number of decimal passes for the radix algorithm (0 = derive)",
	Value: 0,
}

var _FlagOrder = &cli.StringFlag{
	Name:  "order",
	Usage: "traversal order: pre, in, post or all",
	Value: "all",
}

var _FlagStrategy = &cli.StringFlag{
	Name:  "strategy",
	Usage: "traversal strategy: recursive, iterative or all",
	Value: "all",
}

var _FlagCount = &cli.IntFlag{
	Name:  "n",
	Usage: "number of random values",
	Value: 100000,
}

var _FlagMax = &cli.IntFlag{
	Name:  "max",
	Usage: "random values are drawn from [0, max]",
	Value: 1000000,
}

var _FlagSeed = &cli.Int64Flag{
	Name:  "seed",
	Usage: "random seed",
	Value: 1,
}

// NewApp returns the lvsort command line application. Output is written to
// the app's Writer so callers can redirect it.
func NewApp() *cli.App {
	return &cli.App{
		Name: "lvsort",
		Usage: "classic sorting algorithms and binary tree traversals.\n\n" +
			"lvsort list\n" +
			"lvsort sort --algo heap --values 38,29,14,35,22,61,35,59,36,2,-1,-12\n" +
			"lvsort sort --algo bucket --bucket-width 10 --values 38,29,14,35\n" +
			"lvsort tree --order post --strategy iterative\n" +
			"lvsort bench --algo merge --n 1000000 --seed 7",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "lists the available sorting algorithms",
				Action: listAction,
			},
			{
				Name:  "sort",
				Usage: "sorts the given values",
				Flags: []cli.Flag{
					_FlagAlgo,
					_FlagValues,
					_FlagBucketWidth,
					_FlagDigits,
				},
				Action: sortAction,
			},
			{
				Name:  "tree",
				Usage: "traverses the sample tree, or a balanced tree built from --values",
				Flags: []cli.Flag{
					_FlagOrder,
					_FlagStrategy,
					_FlagValues,
				},
				Action: treeAction,
			},
			{
				Name:  "bench",
				Usage: "times one algorithm on seeded random values",
				Flags: []cli.Flag{
					_FlagAlgo,
					_FlagCount,
					_FlagMax,
					_FlagSeed,
					_FlagBucketWidth,
				},
				Action: benchAction,
			},
		},
	}
}

func listAction(ctx *cli.Context) error {
	w := ctx.App.Writer
	for _, a := range sorting.Algorithms() {
		kind := "distribution"
		if a.Comparison() {
			kind = "comparison"
		}
		fmt.Fprintf(w, "%-16s %s\n", a, kind)
	}

	return nil
}

func sortAction(ctx *cli.Context) error {
	algo, err := sorting.ParseAlgorithm(ctx.String(_FlagAlgo.Name))
	if err != nil {
		return err
	}

	values := ctx.IntSlice(_FlagValues.Name)
	out, err := sorting.Sort(algo, values,
		sorting.WithBucketWidth(ctx.Int(_FlagBucketWidth.Name)),
		sorting.WithRadixDigits(ctx.Int(_FlagDigits.Name)),
	)
	if err != nil {
		return fmt.Errorf("%s sort failed - %w", algo, err)
	}

	fmt.Fprintln(ctx.App.Writer, joinInts(out))

	return nil
}

func treeAction(ctx *cli.Context) error {
	orders, err := parseOrders(ctx.String(_FlagOrder.Name))
	if err != nil {
		return err
	}
	strategies, err := parseStrategies(ctx.String(_FlagStrategy.Name))
	if err != nil {
		return err
	}

	root := bintree.Sample()
	if values := ctx.IntSlice(_FlagValues.Name); len(values) > 0 {
		root = bintree.Balanced(values)
	}

	w := ctx.App.Writer
	for _, order := range orders {
		for _, strategy := range strategies {
			values, err := bintree.Traverse(root, order, strategy)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-10s %-9s %s\n", order, strategy, joinInts(values))
		}
	}

	return nil
}

func benchAction(ctx *cli.Context) error {
	algo, err := sorting.ParseAlgorithm(ctx.String(_FlagAlgo.Name))
	if err != nil {
		return err
	}
	n := ctx.Int(_FlagCount.Name)
	maxValue := ctx.Int(_FlagMax.Name)
	if n < 0 || maxValue < 0 {
		return fmt.Errorf("--n and --max must not be negative")
	}
	if maxValue == math.MaxInt {
		return fmt.Errorf("--max must be below %d", math.MaxInt)
	}

	rng := rand.New(rand.NewSource(ctx.Int64(_FlagSeed.Name)))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(maxValue + 1)
	}

	start := time.Now()
	out, err := sorting.Sort(algo, values, sorting.WithBucketWidth(ctx.Int(_FlagBucketWidth.Name)))
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s sort failed - %w", algo, err)
	}
	if !sorting.IsSorted(out) {
		return fmt.Errorf("%s produced unsorted output", algo)
	}

	rate := "n/a"
	if secs := elapsed.Seconds(); secs > 0 {
		rate = humanize.SIWithDigits(float64(n)/secs, 1, "values/s")
	}
	fmt.Fprintf(ctx.App.Writer, "%s: sorted %s values in %s (%s)\n",
		algo, humanize.Comma(int64(n)), elapsed.Round(time.Microsecond), rate)

	return nil
}

func parseOrders(name string) ([]bintree.Order, error) {
	if name == "all" {
		return []bintree.Order{bintree.PreOrder, bintree.InOrder, bintree.PostOrder}, nil
	}
	order, err := bintree.ParseOrder(name)
	if err != nil {
		return nil, err
	}

	return []bintree.Order{order}, nil
}

func parseStrategies(name string) ([]bintree.Strategy, error) {
	if name == "all" {
		return []bintree.Strategy{bintree.Recursive, bintree.Iterative}, nil
	}
	strategy, err := bintree.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	return []bintree.Strategy{strategy}, nil
}

func joinInts(values []int) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}
