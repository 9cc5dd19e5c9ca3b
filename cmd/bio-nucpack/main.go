// bio-nucpack packs nucleotide sequences from FASTA files into 2-bit codes
// and reports statistics computed on the packed form.
package main

import (
	"fmt"
	"os"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/nucpack/nucsimd"
	"v.io/x/lib/cmdline"
)

func addTierFlag(cmd *cmdline.Command) *string {
	return cmd.Flags.String("tier", "", "Kernel tier: scalar, narrow or wide. Defaults to the widest tier the CPU supports.")
}

func codecFor(tier string) (*nucsimd.Codec, error) {
	if tier == "" {
		return nucsimd.Default(), nil
	}
	t, err := nucsimd.ParseTier(tier)
	if err != nil {
		return nil, err
	}
	return nucsimd.NewCodec(t)
}

func newCmdCheck() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "check",
		Short:    "Report whether every record of a FASTA file contains only ACGTU symbols",
		ArgsName: "fastapath",
	}
	tier := addTierFlag(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("check takes one pathname argument, but got %v", argv)
		}
		codec, err := codecFor(*tier)
		if err != nil {
			return err
		}
		return check(vcontext.Background(), codec, argv[0], env.Stdout)
	})
	return cmd
}

func newCmdStats() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "stats",
		Short:    "Print length, GC content, popcount and content hash of every FASTA record",
		ArgsName: "fastapath",
	}
	tier := addTierFlag(cmd)
	parallelism := cmd.Flags.Int("parallelism", 0, "Maximum number of records processed at once; 0 = runtime.NumCPU()")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("stats takes one pathname argument, but got %v", argv)
		}
		codec, err := codecFor(*tier)
		if err != nil {
			return err
		}
		return stats(vcontext.Background(), codec, argv[0], *parallelism, env.Stdout)
	})
	return cmd
}

func newCmdRevcomp() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "revcomp",
		Short:    "Write the reverse complement of every FASTA record",
		ArgsName: "srcpath destpath",
	}
	tier := addTierFlag(cmd)
	width := cmd.Flags.Int("width", 80, "Bases per output line")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("revcomp takes srcpath destpath, but got %v", argv)
		}
		codec, err := codecFor(*tier)
		if err != nil {
			return err
		}
		return revcomp(vcontext.Background(), codec, argv[0], argv[1], *width)
	})
	return cmd
}

func newCmdHamming() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "hamming",
		Short:    "Print the Hamming distance between every pair of equal-length FASTA records",
		ArgsName: "fastapath",
	}
	tier := addTierFlag(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("hamming takes one pathname argument, but got %v", argv)
		}
		codec, err := codecFor(*tier)
		if err != nil {
			return err
		}
		return hamming(vcontext.Background(), codec, argv[0], env.Stdout)
	})
	return cmd
}

func newCmdGen() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "gen",
		Short:    "Write random nucleotide sequences in FASTA format",
		ArgsName: "destpath",
	}
	opts := genOpts{}
	cmd.Flags.IntVar(&opts.n, "n", 1, "Number of records")
	cmd.Flags.IntVar(&opts.length, "len", 1000, "Bases per record")
	cmd.Flags.Float64Var(&opts.gc, "gc", 0.5, "Expected fraction of C and G")
	cmd.Flags.Int64Var(&opts.seed, "seed", 0, "Random seed")
	cmd.Flags.IntVar(&opts.width, "width", 80, "Bases per output line")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("gen takes one pathname argument, but got %v", argv)
		}
		return gen(vcontext.Background(), argv[0], opts)
	})
	return cmd
}

func newCmdBench() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "bench",
		Short: "Time every operation on every kernel tier",
	}
	opts := benchOpts{}
	cmd.Flags.IntVar(&opts.length, "len", 1<<20, "Bases per test sequence")
	cmd.Flags.Float64Var(&opts.gc, "gc", 0.5, "Expected fraction of C and G")
	cmd.Flags.IntVar(&opts.iters, "iters", 100, "Repetitions per operation")
	cmd.Flags.Int64Var(&opts.seed, "seed", 0, "Random seed")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("bench takes no arguments, but got %v", argv)
		}
		return bench(opts, env.Stdout)
	})
	return cmd
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-nucpack",
		Short:    "Tools for 2-bit packed nucleotide sequences",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdCheck(),
			newCmdStats(),
			newCmdRevcomp(),
			newCmdHamming(),
			newCmdGen(),
			newCmdBench(),
		},
	}
}

func main() {
	shutdown := grail.Init()
	log.Debug.Printf("bio-nucpack: detected %v tier", nucsimd.DetectTier())
	cmdline.HideGlobalFlagsExcept()
	env := cmdline.EnvFromOS()
	err := cmdline.ParseAndRun(newCmdRoot(), env, os.Args[1:])
	shutdown()
	os.Exit(cmdline.ExitCode(err, env.Stderr))
}
