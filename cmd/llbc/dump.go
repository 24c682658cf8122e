package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"llbc/internal/ir"
	"llbc/internal/trace"
	"llbc/internal/types"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	nameColor    = color.New(color.FgYellow)
	commentColor = color.New(color.FgHiBlack)
)

func colorOverride(disable bool) {
	color.NoColor = disable
}

var dumpTraceLevel string

var dumpCmd = &cobra.Command{
	Use:   "dump <crate-file>",
	Short: "Decode a serialized crate and pretty-print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupColor(cmd)

		level, err := trace.ParseLevel(dumpTraceLevel)
		if err != nil {
			return err
		}
		tr := trace.NewWriter(os.Stderr, level)

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening crate file: %w", err)
		}
		defer f.Close()

		crate, err := ir.ReadCrate(f)
		if err != nil {
			return err
		}
		trace.Emit(tr, trace.LevelPhase, "dump",
			fmt.Sprintf("crate %q: %d types, %d funs, %d globals",
				crate.Name, crate.Types.Decls.Len(), crate.Funs.Len(), crate.Globals.Len()))

		dumpCrate(crate)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpTraceLevel, "trace", "off", "trace level (off|phase|detail)")
}

func dumpCrate(crate *ir.Crate) {
	ctx := crate.NewFormatter()

	headerColor.Printf("crate %s\n", crate.Name)
	for id, name := range crate.Files.All {
		commentColor.Printf("// file %d: %s\n", id, name)
	}

	for _, decl := range crate.Types.Decls.All {
		fmt.Println()
		dumpTypeDecl(ctx, decl)
	}
	for _, decl := range crate.Globals.All {
		fmt.Println()
		dumpGlobalDecl(ctx, decl)
	}
	for _, decl := range crate.Funs.All {
		fmt.Println()
		dumpFunDecl(ctx, decl)
	}
}

func dumpTypeDecl(ctx ir.Formatter, decl *types.TypeDecl) {
	switch decl.Kind {
	case types.DeclStruct:
		headerColor.Print("struct ")
		nameColor.Println(decl.Name)
		for _, f := range decl.Fields.All {
			name := f.Name
			if name == "" {
				name = "_"
			}
			fmt.Printf("\t%s: %s\n", name, f.Ty.FmtWithCtx(ctx))
		}
	case types.DeclEnum:
		headerColor.Print("enum ")
		nameColor.Println(decl.Name)
		for _, v := range decl.Variants.All {
			fmt.Printf("\t%s(%d fields)\n", v.Name, v.Fields.Len())
		}
	default:
		headerColor.Print("opaque type ")
		nameColor.Println(decl.Name)
	}
}

func dumpGlobalDecl(ctx ir.Formatter, decl *ir.GlobalDecl) {
	headerColor.Print("global ")
	nameColor.Print(decl.Name)
	fmt.Printf(": %s\n", decl.Ty.FmtWithCtx(ctx))
	if decl.Body != nil {
		fmt.Println(decl.Body.FmtWithCtx(ctx, "\t"))
	}
}

func dumpFunDecl(ctx ir.Formatter, decl *ir.FunDecl) {
	headerColor.Print("fn ")
	nameColor.Print(decl.Name)
	fmt.Printf("(%d args) -> %s\n", len(decl.Sig.Inputs), decl.Sig.Output.FmtWithCtx(ctx))
	if decl.Body == nil {
		commentColor.Println("\t// opaque")
		return
	}
	fmt.Println(decl.Body.FmtWithCtx(ctx, "\t"))
}
