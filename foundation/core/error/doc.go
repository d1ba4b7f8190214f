// Package error provides structured error handling for the Lox front end.
//
// Package: error
// Title: Lox Error Handling
// Description: Implements a coded error type carrying severity, operation and
//              key/value details. Scanner and parser diagnostics are wrapped in
//              these errors by the engine so callers can branch on a code while
//              still recovering the full diagnostic list with errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Replaced platform codes with lexical/syntax/runtime codes
//
// Usage:
//   import loxerror "github.com/msto63/lox/foundation/core/error"
//
//   err := loxerror.Wrap(diagnostics, "parse failed").
//     WithCode(loxerror.CodeSyntax).
//     WithDetail("diagnostics", len(diagnostics))
//
//   if loxerror.HasCode(err, loxerror.CodeSyntax) {
//     // report and move on
//   }
package error
