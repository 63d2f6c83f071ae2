package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arenakit/arena"
)

var (
	// Global flags
	blockSize int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "arenademo",
	Short: "Exercise the arena allocator end to end",
	Long: `arenademo walks the arena allocator through its whole surface: it
initializes an arena, allocates a typed array, duplicates a string, takes a
checkpoint, performs a large scratch allocation, releases back to the
checkpoint, reports usage statistics, and destroys the arena.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

func init() {
	rootCmd.Flags().IntVar(&blockSize, "block-size", 64*1024, "Default block capacity in bytes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report intermediate allocator state")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	a := arena.NewArena(blockSize)
	defer a.Destroy()

	// A typed array of 1000 ints.
	xs := arena.AllocSlice[int32](a, 1000)
	if xs == nil {
		return errors.New("int array allocation failed")
	}
	for i := range xs {
		xs[i] = int32(i)
	}

	// A string copied into arena storage.
	name := arena.Strdup(a, "blah blah blah")
	if name == "" {
		return errors.New("string duplication failed")
	}
	printVerbose(cmd, "after setup: %d used / %d reserved in %d block(s)\n",
		a.BytesUsed(), a.BytesReserved(), a.NumBlocks())

	// A checkpointed scratch region: 1 Mi float64s, then roll back.
	m := a.Mark()
	scratch := arena.AllocSlice[float64](a, 1<<20)
	if scratch == nil {
		return errors.New("scratch allocation failed")
	}
	for i := range scratch {
		scratch[i] = float64(i) * 0.5
	}
	printVerbose(cmd, "with scratch: %d used / %d reserved in %d block(s)\n",
		a.BytesUsed(), a.BytesReserved(), a.NumBlocks())
	a.Release(m)

	fmt.Fprintf(out, "%q survives the release\n", name)
	fmt.Fprintf(out, "xs[999] = %d\n", xs[999])
	fmt.Fprintf(out, "%d used / %d reserved\n", a.BytesUsed(), a.BytesReserved())
	return nil
}

// printVerbose prints a progress message when --verbose is set
func printVerbose(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	}
}
