// Package passes holds the IR-hygiene transformations that run over
// completed bodies before serialization.
package passes

import (
	"fmt"

	"llbc/internal/ids"
	"llbc/internal/ir"
	"llbc/internal/names"
	"llbc/internal/trace"
)

// usageCounter tallies every occurrence of a local across places, operands
// and nested expressions. It only cares about the VarID leaf, so the
// default recursion handles everything else.
type usageCounter struct {
	ir.SharedAstVisitorBase
	counts map[ir.VarID]int
}

func newUsageCounter() *usageCounter {
	uc := &usageCounter{counts: map[ir.VarID]int{}}
	uc.Init(uc)
	return uc
}

func (uc *usageCounter) VisitVarID(id ir.VarID) {
	uc.counts[id]++
}

// localRewriter replaces every local reference through the substitution
// map. A miss means the counting traversal and the rewriting traversal
// disagree on what a variable reference is, which is a bug.
type localRewriter struct {
	ir.MutAstVisitorBase
	subst map[ir.VarID]ir.VarID
	name  names.Name
}

func newLocalRewriter(name names.Name, subst map[ir.VarID]ir.VarID) *localRewriter {
	lr := &localRewriter{subst: subst, name: name}
	lr.Init(lr)
	return lr
}

func (lr *localRewriter) VisitVarID(id *ir.VarID) {
	nid, ok := lr.subst[*id]
	if !ok {
		panic(fmt.Errorf("passes: %s: local %d escaped the usage count", lr.name, *id))
	}
	*id = nid
}

// RemoveUnusedLocals drops locals that are never referenced from every
// function and global body of the crate, renumbering the survivors
// contiguously from 0. The return slot and the arguments are always kept.
// A nil tracer disables tracing.
func RemoveUnusedLocals(tr trace.Tracer, crate *ir.Crate) {
	if tr == nil {
		tr = trace.Nop
	}
	for _, nb := range ir.FunctionBodies(crate.Funs) {
		removeUnusedLocals(tr, nb)
	}
	for _, nb := range ir.GlobalBodies(crate.Globals) {
		removeUnusedLocals(tr, nb)
	}
}

func removeUnusedLocals(tr trace.Tracer, nb ir.NamedBody) {
	body := nb.Body

	// The return slot (0) and the arguments (1..argCount) stay whether or
	// not the body mentions them.
	uc := newUsageCounter()
	for i := range body.ArgCount + 1 {
		uc.counts[ids.FromLen[ir.VarID](i)] = 0
	}
	uc.VisitStatement(body.Body)

	gen := ids.NewGenerator[ir.VarID]()
	locals := ids.NewVector[ir.VarID, ir.Var]()
	subst := make(map[ir.VarID]ir.VarID, len(uc.counts))
	for id, v := range body.Locals.All {
		if _, used := uc.counts[id]; !used {
			continue
		}
		nid := gen.Fresh()
		subst[id] = nid
		v.Index = nid
		locals.Push(nid, v)
	}

	dropped := body.Locals.Len() - locals.Len()
	body.Locals = locals
	newLocalRewriter(nb.Name, subst).VisitStatement(body.Body)

	for _, v := range body.Locals.All {
		if v.Ty.IsNever() {
			panic(fmt.Errorf("passes: %s: local %s still has the never type", nb.Name, v))
		}
	}

	if dropped > 0 {
		trace.Emit(tr, trace.LevelPhase, "remove-unused-locals",
			fmt.Sprintf("%s: dropped %d of %d locals", nb.Name, dropped, dropped+locals.Len()))
	}
}
