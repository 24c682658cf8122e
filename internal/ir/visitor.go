package ir

import "llbc/internal/types"

// The expression traversal comes in two structurally parallel families,
// shared (read-only) and mutating, extending the type visitors the same
// way. See the package comment in types/visitor.go for the embedding and
// dispatch protocol; the recursion shape of every DefaultVisit* function
// below must stay in sync with its Mut twin.

// SharedExprVisitor observes the expression model.
type SharedExprVisitor interface {
	types.SharedVisitor

	VisitPlace(p *Place)
	VisitVarID(id VarID)
	VisitProjectionElem(pe *ProjectionElem)
	VisitOperand(o *Operand)
	VisitConstantValue(cv *ConstantValue)
	VisitRvalue(rv *Rvalue)
	VisitAggregateKind(ak *AggregateKind)
	VisitCall(c *Call)
	VisitFunDeclID(id FunDeclID)
}

// DefaultVisitPlace visits the base variable then each projection element
// in order.
func DefaultVisitPlace(v SharedExprVisitor, p *Place) {
	v.VisitVarID(p.Var)
	for i := range p.Projection {
		v.VisitProjectionElem(&p.Projection[i])
	}
}

// DefaultVisitProjectionElem recurses into the children of a projection
// element.
func DefaultVisitProjectionElem(v SharedExprVisitor, pe *ProjectionElem) {
	switch pe.Kind {
	case ProjField:
		if pe.Field.Class == FieldProjAdt {
			v.VisitTypeDeclID(pe.Field.Adt)
		}
	case ProjIndex:
		v.VisitVarID(pe.Index)
	}
}

// DefaultVisitOperand recurses into the children of an operand.
func DefaultVisitOperand(v SharedExprVisitor, o *Operand) {
	switch o.Kind {
	case OperandCopy, OperandMove:
		v.VisitPlace(&o.Place)
	case OperandConst:
		v.VisitTy(&o.Ty)
		v.VisitConstantValue(&o.Const)
	}
}

// DefaultVisitConstantValue recurses into the children of a constant value.
func DefaultVisitConstantValue(v SharedExprVisitor, cv *ConstantValue) {
	switch cv.Kind {
	case ConstLiteral:
		v.VisitLiteral(&cv.Literal)
	case ConstAdt:
		for i := range cv.Fields {
			v.VisitConstantValue(&cv.Fields[i])
		}
	case ConstRef, ConstStatic:
		v.VisitGlobalDeclID(cv.Global)
	case ConstVar:
		v.VisitConstGenericVarID(cv.Var)
	}
}

// DefaultVisitRvalue recurses into the children of an rvalue.
func DefaultVisitRvalue(v SharedExprVisitor, rv *Rvalue) {
	switch rv.Kind {
	case RvUse:
		v.VisitOperand(&rv.Use)
	case RvRef:
		v.VisitPlace(&rv.Ref.Place)
	case RvUnaryOp:
		v.VisitOperand(&rv.Unary.Arg)
	case RvBinaryOp:
		v.VisitOperand(&rv.Binary.Left)
		v.VisitOperand(&rv.Binary.Right)
	case RvDiscriminant:
		v.VisitPlace(&rv.Discriminant)
	case RvAggregate:
		v.VisitAggregateKind(&rv.Aggregate.Kind)
		for i := range rv.Aggregate.Ops {
			v.VisitOperand(&rv.Aggregate.Ops[i])
		}
	case RvGlobal:
		v.VisitGlobalDeclID(rv.Global)
	case RvLen:
		v.VisitPlace(&rv.Len.Place)
	}
}

// DefaultVisitAggregateKind recurses into the children of an aggregate
// kind.
func DefaultVisitAggregateKind(v SharedExprVisitor, ak *AggregateKind) {
	switch ak.Class {
	case AggOption, AggRange:
		v.VisitTy(&ak.Ty)
	case AggArray:
		v.VisitTy(&ak.Ty)
		v.VisitConstGeneric(&ak.CgLen)
	case AggAdt:
		v.VisitTypeDeclID(ak.Adt)
		for i := range ak.TypeArgs {
			v.VisitTy(&ak.TypeArgs[i])
		}
		for i := range ak.CgArgs {
			v.VisitConstGeneric(&ak.CgArgs[i])
		}
	}
}

// DefaultVisitCall visits the callee, the instantiation arguments, the
// value arguments, then the destination.
func DefaultVisitCall(v SharedExprVisitor, c *Call) {
	if c.Func.Kind == FunRegular {
		v.VisitFunDeclID(c.Func.Regular)
	}
	for i := range c.TypeArgs {
		v.VisitTy(&c.TypeArgs[i])
	}
	for i := range c.CgArgs {
		v.VisitConstGeneric(&c.CgArgs[i])
	}
	for i := range c.Args {
		v.VisitOperand(&c.Args[i])
	}
	v.VisitPlace(&c.Dest)
}

// SharedExprVisitorBase provides the default recursion for
// SharedExprVisitor.
type SharedExprVisitorBase struct {
	types.SharedVisitorBase
	self SharedExprVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *SharedExprVisitorBase) Init(self SharedExprVisitor) {
	b.SharedVisitorBase.Init(self)
	b.self = self
}

func (b *SharedExprVisitorBase) VisitPlace(p *Place) { DefaultVisitPlace(b.self, p) }
func (b *SharedExprVisitorBase) VisitProjectionElem(pe *ProjectionElem) {
	DefaultVisitProjectionElem(b.self, pe)
}
func (b *SharedExprVisitorBase) VisitOperand(o *Operand) { DefaultVisitOperand(b.self, o) }
func (b *SharedExprVisitorBase) VisitConstantValue(cv *ConstantValue) {
	DefaultVisitConstantValue(b.self, cv)
}
func (b *SharedExprVisitorBase) VisitRvalue(rv *Rvalue) { DefaultVisitRvalue(b.self, rv) }
func (b *SharedExprVisitorBase) VisitAggregateKind(ak *AggregateKind) {
	DefaultVisitAggregateKind(b.self, ak)
}
func (b *SharedExprVisitorBase) VisitCall(c *Call)        { DefaultVisitCall(b.self, c) }
func (b *SharedExprVisitorBase) VisitVarID(VarID)         {}
func (b *SharedExprVisitorBase) VisitFunDeclID(FunDeclID) {}

// MutExprVisitor rewrites the expression model in place.
type MutExprVisitor interface {
	types.MutVisitor

	VisitPlace(p *Place)
	VisitVarID(id *VarID)
	VisitProjectionElem(pe *ProjectionElem)
	VisitOperand(o *Operand)
	VisitConstantValue(cv *ConstantValue)
	VisitRvalue(rv *Rvalue)
	VisitAggregateKind(ak *AggregateKind)
	VisitCall(c *Call)
	VisitFunDeclID(id *FunDeclID)
}

// DefaultVisitPlaceMut visits the base variable then each projection
// element in order.
func DefaultVisitPlaceMut(v MutExprVisitor, p *Place) {
	v.VisitVarID(&p.Var)
	for i := range p.Projection {
		v.VisitProjectionElem(&p.Projection[i])
	}
}

// DefaultVisitProjectionElemMut recurses into the children of a projection
// element.
func DefaultVisitProjectionElemMut(v MutExprVisitor, pe *ProjectionElem) {
	switch pe.Kind {
	case ProjField:
		if pe.Field.Class == FieldProjAdt {
			v.VisitTypeDeclID(&pe.Field.Adt)
		}
	case ProjIndex:
		v.VisitVarID(&pe.Index)
	}
}

// DefaultVisitOperandMut recurses into the children of an operand.
func DefaultVisitOperandMut(v MutExprVisitor, o *Operand) {
	switch o.Kind {
	case OperandCopy, OperandMove:
		v.VisitPlace(&o.Place)
	case OperandConst:
		v.VisitTy(&o.Ty)
		v.VisitConstantValue(&o.Const)
	}
}

// DefaultVisitConstantValueMut recurses into the children of a constant
// value.
func DefaultVisitConstantValueMut(v MutExprVisitor, cv *ConstantValue) {
	switch cv.Kind {
	case ConstLiteral:
		v.VisitLiteral(&cv.Literal)
	case ConstAdt:
		for i := range cv.Fields {
			v.VisitConstantValue(&cv.Fields[i])
		}
	case ConstRef, ConstStatic:
		v.VisitGlobalDeclID(&cv.Global)
	case ConstVar:
		v.VisitConstGenericVarID(&cv.Var)
	}
}

// DefaultVisitRvalueMut recurses into the children of an rvalue.
func DefaultVisitRvalueMut(v MutExprVisitor, rv *Rvalue) {
	switch rv.Kind {
	case RvUse:
		v.VisitOperand(&rv.Use)
	case RvRef:
		v.VisitPlace(&rv.Ref.Place)
	case RvUnaryOp:
		v.VisitOperand(&rv.Unary.Arg)
	case RvBinaryOp:
		v.VisitOperand(&rv.Binary.Left)
		v.VisitOperand(&rv.Binary.Right)
	case RvDiscriminant:
		v.VisitPlace(&rv.Discriminant)
	case RvAggregate:
		v.VisitAggregateKind(&rv.Aggregate.Kind)
		for i := range rv.Aggregate.Ops {
			v.VisitOperand(&rv.Aggregate.Ops[i])
		}
	case RvGlobal:
		v.VisitGlobalDeclID(&rv.Global)
	case RvLen:
		v.VisitPlace(&rv.Len.Place)
	}
}

// DefaultVisitAggregateKindMut recurses into the children of an aggregate
// kind.
func DefaultVisitAggregateKindMut(v MutExprVisitor, ak *AggregateKind) {
	switch ak.Class {
	case AggOption, AggRange:
		v.VisitTy(&ak.Ty)
	case AggArray:
		v.VisitTy(&ak.Ty)
		v.VisitConstGeneric(&ak.CgLen)
	case AggAdt:
		v.VisitTypeDeclID(&ak.Adt)
		for i := range ak.TypeArgs {
			v.VisitTy(&ak.TypeArgs[i])
		}
		for i := range ak.CgArgs {
			v.VisitConstGeneric(&ak.CgArgs[i])
		}
	}
}

// DefaultVisitCallMut visits the callee, the instantiation arguments, the
// value arguments, then the destination.
func DefaultVisitCallMut(v MutExprVisitor, c *Call) {
	if c.Func.Kind == FunRegular {
		v.VisitFunDeclID(&c.Func.Regular)
	}
	for i := range c.TypeArgs {
		v.VisitTy(&c.TypeArgs[i])
	}
	for i := range c.CgArgs {
		v.VisitConstGeneric(&c.CgArgs[i])
	}
	for i := range c.Args {
		v.VisitOperand(&c.Args[i])
	}
	v.VisitPlace(&c.Dest)
}

// MutExprVisitorBase provides the default recursion for MutExprVisitor.
type MutExprVisitorBase struct {
	types.MutVisitorBase
	self MutExprVisitor
}

// Init sets the dispatch target. Must be called before the first visit.
func (b *MutExprVisitorBase) Init(self MutExprVisitor) {
	b.MutVisitorBase.Init(self)
	b.self = self
}

func (b *MutExprVisitorBase) VisitPlace(p *Place) { DefaultVisitPlaceMut(b.self, p) }
func (b *MutExprVisitorBase) VisitProjectionElem(pe *ProjectionElem) {
	DefaultVisitProjectionElemMut(b.self, pe)
}
func (b *MutExprVisitorBase) VisitOperand(o *Operand) { DefaultVisitOperandMut(b.self, o) }
func (b *MutExprVisitorBase) VisitConstantValue(cv *ConstantValue) {
	DefaultVisitConstantValueMut(b.self, cv)
}
func (b *MutExprVisitorBase) VisitRvalue(rv *Rvalue) { DefaultVisitRvalueMut(b.self, rv) }
func (b *MutExprVisitorBase) VisitAggregateKind(ak *AggregateKind) {
	DefaultVisitAggregateKindMut(b.self, ak)
}
func (b *MutExprVisitorBase) VisitCall(c *Call)         { DefaultVisitCallMut(b.self, c) }
func (b *MutExprVisitorBase) VisitVarID(*VarID)         {}
func (b *MutExprVisitorBase) VisitFunDeclID(*FunDeclID) {}
