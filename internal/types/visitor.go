package types

// The traversal contract comes in two structurally identical families: a
// shared (read-only) one and a mutating one. Go cannot parameterize code
// over mutability, so the two families are spelled out in parallel; the
// recursion shape of each visit hook must be kept in sync with its twin.
//
// Implementations embed SharedVisitorBase (resp. MutVisitorBase) and call
// Init with themselves, then override only the hooks they care about. The
// base recursion dispatches through the back-pointer, so overridden hooks
// are reached from the default traversal of their parents. An override can
// call the corresponding DefaultVisit* function to keep descending into
// children, or skip it to cut the traversal off.

// SharedVisitor observes the type sublanguage.
type SharedVisitor interface {
	VisitTy(t *Ty)
	VisitTypeDeclID(id TypeDeclID)
	VisitTypeVarID(id TypeVarID)
	VisitGlobalDeclID(id GlobalDeclID)
	VisitConstGenericVarID(id ConstGenericVarID)
	VisitConstGeneric(cg *ConstGeneric)
	VisitLiteral(l *Literal)
}

// DefaultVisitTy recurses into the children of a type.
func DefaultVisitTy(v SharedVisitor, t *Ty) {
	switch t.Kind {
	case TyAdt:
		if t.ID.Kind == TypeIDAdt {
			v.VisitTypeDeclID(t.ID.Adt)
		}
		for i := range t.TypeArgs {
			v.VisitTy(&t.TypeArgs[i])
		}
		for i := range t.CgArgs {
			v.VisitConstGeneric(&t.CgArgs[i])
		}
	case TyRef:
		v.VisitTy(t.Elem)
	case TyTypeVar:
		v.VisitTypeVarID(t.Var)
	}
}

// DefaultVisitConstGeneric recurses into the children of a const-generic
// argument.
func DefaultVisitConstGeneric(v SharedVisitor, cg *ConstGeneric) {
	switch cg.Kind {
	case CgVar:
		v.VisitConstGenericVarID(cg.Var)
	case CgValue:
		v.VisitLiteral(&cg.Value)
	case CgGlobal:
		v.VisitGlobalDeclID(cg.Global)
	}
}

// SharedVisitorBase provides the default recursion for SharedVisitor.
type SharedVisitorBase struct {
	self SharedVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *SharedVisitorBase) Init(self SharedVisitor) {
	b.self = self
}

func (b *SharedVisitorBase) VisitTy(t *Ty) { DefaultVisitTy(b.self, t) }
func (b *SharedVisitorBase) VisitConstGeneric(cg *ConstGeneric) {
	DefaultVisitConstGeneric(b.self, cg)
}
func (b *SharedVisitorBase) VisitTypeDeclID(TypeDeclID)               {}
func (b *SharedVisitorBase) VisitTypeVarID(TypeVarID)                 {}
func (b *SharedVisitorBase) VisitGlobalDeclID(GlobalDeclID)           {}
func (b *SharedVisitorBase) VisitConstGenericVarID(ConstGenericVarID) {}
func (b *SharedVisitorBase) VisitLiteral(*Literal)                    {}

// MutVisitor rewrites the type sublanguage in place. Identifier hooks take
// pointers so a pass can substitute them.
type MutVisitor interface {
	VisitTy(t *Ty)
	VisitTypeDeclID(id *TypeDeclID)
	VisitTypeVarID(id *TypeVarID)
	VisitGlobalDeclID(id *GlobalDeclID)
	VisitConstGenericVarID(id *ConstGenericVarID)
	VisitConstGeneric(cg *ConstGeneric)
	VisitLiteral(l *Literal)
}

// DefaultVisitTyMut recurses into the children of a type. Kept structurally
// identical to DefaultVisitTy.
func DefaultVisitTyMut(v MutVisitor, t *Ty) {
	switch t.Kind {
	case TyAdt:
		if t.ID.Kind == TypeIDAdt {
			v.VisitTypeDeclID(&t.ID.Adt)
		}
		for i := range t.TypeArgs {
			v.VisitTy(&t.TypeArgs[i])
		}
		for i := range t.CgArgs {
			v.VisitConstGeneric(&t.CgArgs[i])
		}
	case TyRef:
		v.VisitTy(t.Elem)
	case TyTypeVar:
		v.VisitTypeVarID(&t.Var)
	}
}

// DefaultVisitConstGenericMut recurses into the children of a const-generic
// argument.
func DefaultVisitConstGenericMut(v MutVisitor, cg *ConstGeneric) {
	switch cg.Kind {
	case CgVar:
		v.VisitConstGenericVarID(&cg.Var)
	case CgValue:
		v.VisitLiteral(&cg.Value)
	case CgGlobal:
		v.VisitGlobalDeclID(&cg.Global)
	}
}

// MutVisitorBase provides the default recursion for MutVisitor.
type MutVisitorBase struct {
	self MutVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *MutVisitorBase) Init(self MutVisitor) {
	b.self = self
}

func (b *MutVisitorBase) VisitTy(t *Ty) { DefaultVisitTyMut(b.self, t) }
func (b *MutVisitorBase) VisitConstGeneric(cg *ConstGeneric) {
	DefaultVisitConstGenericMut(b.self, cg)
}
func (b *MutVisitorBase) VisitTypeDeclID(*TypeDeclID)               {}
func (b *MutVisitorBase) VisitTypeVarID(*TypeVarID)                 {}
func (b *MutVisitorBase) VisitGlobalDeclID(*GlobalDeclID)           {}
func (b *MutVisitorBase) VisitConstGenericVarID(*ConstGenericVarID) {}
func (b *MutVisitorBase) VisitLiteral(*Literal)                     {}
