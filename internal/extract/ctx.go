package extract

import (
	"fmt"

	"llbc/internal/ids"
	"llbc/internal/ir"
	"llbc/internal/source"
	"llbc/internal/trace"
	"llbc/internal/types"
)

// ItemKind tags a work-list entry with its declaration namespace.
type ItemKind uint8

const (
	ItemType ItemKind = iota
	ItemFun
	ItemGlobal
)

// String returns the string representation of ItemKind.
func (k ItemKind) String() string {
	switch k {
	case ItemType:
		return "type"
	case ItemFun:
		return "fun"
	case ItemGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// WorkItem is one not-yet-translated declaration.
type WorkItem struct {
	Kind ItemKind
	Decl DeclID
}

// Ctx is the translation context for one extraction run. It owns the
// crate under construction, the memoizing host-id maps for every
// declaration namespace, and the work-list driving the translation loop.
//
// All mutation goes through the registration and lookup API; translation
// is strictly sequential, so there is no locking.
type Ctx struct {
	Cfg   *Config
	Crate *ir.Crate

	tr trace.Tracer

	types   *ids.Map[DeclID, types.TypeDeclID]
	funs    *ids.Map[DeclID, ir.FunDeclID]
	globals *ids.Map[DeclID, ir.GlobalDeclID]
	files   *ids.Map[string, source.FileID]

	queue  []WorkItem
	queued map[WorkItem]struct{}
}

// NewCtx returns a fresh translation context. A nil tracer disables
// tracing.
func NewCtx(cfg *Config, tr trace.Tracer) *Ctx {
	if tr == nil {
		tr = trace.Nop
	}
	return &Ctx{
		Cfg:     cfg,
		Crate:   ir.NewCrate(cfg.Crate),
		tr:      tr,
		types:   ids.NewMap[DeclID, types.TypeDeclID](),
		funs:    ids.NewMap[DeclID, ir.FunDeclID](),
		globals: ids.NewMap[DeclID, ir.GlobalDeclID](),
		files:   ids.NewMap[string, source.FileID](),
		queued:  make(map[WorkItem]struct{}),
	}
}

func (cx *Ctx) enqueue(item WorkItem) {
	if _, ok := cx.queued[item]; ok {
		panic(fmt.Errorf("extract: %s decl %d enqueued twice", item.Kind, item.Decl))
	}
	cx.queued[item] = struct{}{}
	cx.queue = append(cx.queue, item)
	trace.Emit(cx.tr, trace.LevelDetail, "enqueue",
		fmt.Sprintf("%s decl %d", item.Kind, item.Decl))
}

// RegisterType returns the dense identifier for a host type declaration,
// assigning one and enqueuing the declaration for translation on first
// sight. Idempotent.
func (cx *Ctx) RegisterType(decl DeclID) types.TypeDeclID {
	id, fresh := cx.types.GetOrInsert(decl)
	if fresh {
		cx.enqueue(WorkItem{Kind: ItemType, Decl: decl})
	}
	return id
}

// RegisterFun returns the dense identifier for a host function
// declaration, enqueuing it on first sight. Idempotent.
func (cx *Ctx) RegisterFun(decl DeclID) ir.FunDeclID {
	id, fresh := cx.funs.GetOrInsert(decl)
	if fresh {
		cx.enqueue(WorkItem{Kind: ItemFun, Decl: decl})
	}
	return id
}

// RegisterGlobal returns the dense identifier for a host global (const or
// static) declaration, enqueuing it on first sight. Idempotent.
func (cx *Ctx) RegisterGlobal(decl DeclID) ir.GlobalDeclID {
	id, fresh := cx.globals.GetOrInsert(decl)
	if fresh {
		cx.enqueue(WorkItem{Kind: ItemGlobal, Decl: decl})
	}
	return id
}

// RegisterFile returns the identifier for a file name, recording it in the
// crate's file table on first sight. Idempotent.
func (cx *Ctx) RegisterFile(name source.FileName) source.FileID {
	id, fresh := cx.files.GetOrInsert(name.Key())
	if fresh {
		cx.Crate.Files.Push(id, name)
	}
	return id
}

// Pop removes and returns the next declaration to translate. The second
// result is false when the work-list is empty.
func (cx *Ctx) Pop() (WorkItem, bool) {
	if len(cx.queue) == 0 {
		return WorkItem{}, false
	}
	item := cx.queue[0]
	cx.queue = cx.queue[1:]
	trace.Emit(cx.tr, trace.LevelPhase, "translate",
		fmt.Sprintf("%s decl %d", item.Kind, item.Decl))
	return item, true
}

// Pending reports how many declarations await translation.
func (cx *Ctx) Pending() int {
	return len(cx.queue)
}

// Tracer returns the context's tracer.
func (cx *Ctx) Tracer() trace.Tracer {
	return cx.tr
}
