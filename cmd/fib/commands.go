package main

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/fibtable/config"
	"github.com/on-the-ground/fibtable/effects/calc"
	effectmodel "github.com/on-the-ground/fibtable/effects/model"
	"github.com/on-the-ground/fibtable/fib"
	"github.com/on-the-ground/fibtable/memo"
	"github.com/on-the-ground/fibtable/pairs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalcCmd(a *app) *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "calc N...",
		Short: "Print the N-th term of the sequence starting at (x, y)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			c, err := a.calculator(cmd)
			if err != nil {
				return err
			}

			if noCache {
				for _, n := range ns {
					v, err := c.Calc(n)
					if err != nil {
						return err
					}
					printTerm(cmd, n, v)
				}
				return nil
			}

			ctx, endOfCalc := calc.WithEffectHandler(
				cmd.Context(),
				effectmodel.NewEffectScopeConfig(a.cfg.BufferSize, a.cfg.NumWorkers),
				c,
			)
			defer endOfCalc()

			results, err := calc.EffectBatch(ctx, a.cfg.NumWorkers, ns...)
			if err != nil {
				return err
			}
			for _, res := range results {
				printTerm(cmd, res.N, res.Value)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("x", "0", "first term of the sequence")
	flags.String("y", "1", "second term of the sequence")
	flags.Int("workers", 4, "calc handler workers")
	flags.BoolVar(&noCache, "no-cache", false, "iterate from the start for every index")
	mustBind(a.v, config.ConfigSequenceX, flags.Lookup("x"))
	mustBind(a.v, config.ConfigSequenceY, flags.Lookup("y"))
	mustBind(a.v, config.ConfigEffectCalcHandlerNumWorkers, flags.Lookup("workers"))
	return cmd
}

func newRecursiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recursive N...",
		Short: "Print standard Fibonacci numbers computed top-down",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}
			store, err := a.memoStore()
			if err != nil {
				return err
			}

			r := fib.NewRecursive(store, fib.WithLogger(a.logger))
			for _, n := range ns {
				v, err := r.Calc(n)
				if err != nil {
					return err
				}
				printTerm(cmd, n, v)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("store", config.MemoStoreMap, "memo store (map, table, ristretto, memdb)")
	flags.Int("size", 4096, "capacity of bounded stores")
	mustBind(a.v, config.ConfigMemoStore, flags.Lookup("store"))
	mustBind(a.v, config.ConfigMemoSize, flags.Lookup("size"))
	return cmd
}

func (a *app) memoStore() (memo.Store[int, *big.Int], error) {
	switch a.cfg.MemoStore {
	case config.MemoStoreTable:
		return memo.NewTable[int, *big.Int](uint32(a.cfg.MemoSize)), nil
	case config.MemoStoreRistretto:
		store, err := memo.NewRistretto[int, *big.Int](int64(a.cfg.MemoSize))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			store.Close()
			return nil
		})
		return store, nil
	case config.MemoStoreMemDB:
		return memo.NewMemDB()
	default:
		return memo.NewMap[int, *big.Int](), nil
	}
}

func newPairsCmd(a *app) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "pairs --target T VALUE...",
		Short: "Print the first pair of values adding up to the target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseInts(args)
			if err != nil {
				return err
			}
			found := pairs.Find(&seq, target)
			a.logger.Debug("pairs searched",
				zap.Int("target", target),
				zap.Ints("remaining", seq),
			)
			for _, p := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", p[0], p[1])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "sum to look for")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
