// Package wff reads and represents well-formed formulas of propositional logic.
//
// Formulas are written with single uppercase letters as atoms and the following
// connectives (from lowest to highest priority):
//
// - for an equivalence, the "<->" or "↔" operator,
// - for an implication, the "->" or "→" operator,
// - for a disjunction ("or"), the "v" or "∨" operator,
// - for a conjunction ("and"), the "^" or "∧" operator,
// - for a negation, the "~" or "¬" unary operator.
//
// Parentheses can be used to group subformulas. All binary operators are left-associative,
// so "A ^ B ^ C" is read as "((A ^ B) ^ C)".
//
// Note that the uppercase letter "V" is always an atom: only the lowercase "v" denotes a disjunction.
//
// For example, the following call:
//
// f, err := Parse("(P -> Q) <-> (~Q -> ~P)")
//
// returns the formula Iff(Implies(Var("P"), Var("Q")), Implies(Not(Var("Q")), Not(Var("P")))),
// whose canonical representation, as returned by f.String(), is
//
// ((P -> Q) <-> ((~ Q) -> (~ P)))
package wff
