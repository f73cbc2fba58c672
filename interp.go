/*
Package interp provides exact symbolic polynomial algebra and Lagrange
polynomial interpolation over generic scalar domain/range pairs.
Given a set of
(x, y) sample points with pairwise-distinct x values, it constructs the unique
polynomial of minimal degree passing through them, and supports algebraic
manipulation (arithmetic, powers, derivative, integral, composition) of the
result and of hand-built polynomials generally.
*/
package interp
