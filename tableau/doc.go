/*
Package tableau decides whether a propositional formula is a tautology, using the semantic tableau method.

To prove that a formula is valid, the prover tries to build a model of its negation.
It starts with a single branch containing the negated formula, and repeatedly replaces,
in each branch, the first formula that is not a literal by its consequences:

    ~~A       => A
    A ^ B     => A, B
    ~(A v B)  => ~A, ~B
    ~(A -> B) => A, ~B
    A v B     => A | B
    ~(A ^ B)  => ~A | ~B
    A -> B    => ~A | B
    A <-> B   => (A -> B) ^ (B -> A)
    ~(A <-> B) => ~(A -> B) v ~(B -> A)

where "|" means the branch is split in two. A branch is closed as soon as it contains
an atom and its negation. If all branches get closed, the negation has no model and the
formula is a tautology. If a branch cannot be expanded anymore and is still open,
its literals describe a counter-model of the formula.

Branches are processed in first-in, first-out order. The number of branches can grow
exponentially with the number of disjunctions in the formula; a Prover can be given
a step limit or a timeout to bound the search:

    p := tableau.New(tableau.Options{MaxSteps: 10000})
    proof, err := p.Prove(f)
    if errors.Is(err, tableau.ErrResourceExhausted) {
        // The search was abandoned.
    }
    if proof.Status == tableau.Valid {
        // f is a tautology.
    }
*/
package tableau
