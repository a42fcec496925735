// Package astdump renders a parsed JMPL program as JSON, for
// `jmpl ast` and anything else that wants to inspect a tree
// without linking against internal/ast directly. Each node is built
// incrementally with sjson, read back with gjson for path queries,
// and rendered for terminals with tidwall/pretty.
package astdump

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/Jogll1/J-JMPL/internal/ast"
)

// Dump renders a whole program (a statement list) as a JSON array,
// one object per top-level statement.
func Dump(stmts []ast.Stmt) (string, error) {
	doc := "[]"
	for i, s := range stmts {
		node, err := dumpStmt(s)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, strconv.Itoa(i), node)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Query evaluates a gjson path against a Dump result, e.g.
// `astdump.Query(doc, "0.body.#.type")`.
func Query(doc, path string) string {
	return gjson.Get(doc, path).String()
}

// Pretty reformats a JSON document for terminal display.
func Pretty(doc string) string {
	return string(pretty.Pretty([]byte(doc)))
}

func dumpStmt(s ast.Stmt) (string, error) {
	doc := "{}"
	var err error

	switch n := s.(type) {
	case *ast.Expression:
		doc, err = sjson.Set(doc, "type", "Expression")
		if err != nil {
			return "", err
		}
		return setExprField(doc, "expression", n.Expression)

	case *ast.Let:
		doc, err = sjson.Set(doc, "type", "Let")
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, "name", n.Name.Lexeme)
		if err != nil {
			return "", err
		}
		if n.Initialiser == nil {
			return doc, nil
		}
		return setExprField(doc, "initialiser", n.Initialiser)

	case *ast.Block:
		doc, err = sjson.Set(doc, "type", "Block")
		if err != nil {
			return "", err
		}
		body, err := Dump(n.Statements)
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(doc, "body", body)

	case *ast.If:
		doc, err = sjson.Set(doc, "type", "If")
		if err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "condition", n.Condition); err != nil {
			return "", err
		}
		thenDoc, err := dumpStmt(n.Then)
		if err != nil {
			return "", err
		}
		if doc, err = sjson.SetRaw(doc, "then", thenDoc); err != nil {
			return "", err
		}
		if n.Else != nil {
			elseDoc, err := dumpStmt(n.Else)
			if err != nil {
				return "", err
			}
			doc, err = sjson.SetRaw(doc, "else", elseDoc)
			if err != nil {
				return "", err
			}
		}
		return doc, nil

	case *ast.While:
		doc, err = sjson.Set(doc, "type", "While")
		if err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "condition", n.Condition); err != nil {
			return "", err
		}
		bodyDoc, err := dumpStmt(n.Body)
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(doc, "body", bodyDoc)

	case *ast.Function:
		doc, err = sjson.Set(doc, "type", "Function")
		if err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "name", n.Name.Lexeme); err != nil {
			return "", err
		}
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		if doc, err = sjson.Set(doc, "params", params); err != nil {
			return "", err
		}
		bodyDoc, err := dumpStmt(n.Body)
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(doc, "body", bodyDoc)

	case *ast.Return:
		doc, err = sjson.Set(doc, "type", "Return")
		if err != nil {
			return "", err
		}
		if n.Value == nil {
			return doc, nil
		}
		return setExprField(doc, "value", n.Value)

	case *ast.Output:
		doc, err = sjson.Set(doc, "type", "Output")
		if err != nil {
			return "", err
		}
		return setExprField(doc, "expression", n.Expression)

	default:
		return sjson.Set(doc, "type", "Unknown")
	}
}

func setExprField(doc, field string, e ast.Expr) (string, error) {
	raw, err := dumpExpr(e)
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(doc, field, raw)
}

func dumpExpr(e ast.Expr) (string, error) {
	doc := "{}"
	var err error

	switch n := e.(type) {
	case *ast.Literal:
		doc, err = sjson.Set(doc, "type", "Literal")
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "value", n.Value)

	case *ast.Variable:
		doc, err = sjson.Set(doc, "type", "Variable")
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "name", n.Name.Lexeme)

	case *ast.Assign:
		doc, err = sjson.Set(doc, "type", "Assign")
		if err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "name", n.Name.Lexeme); err != nil {
			return "", err
		}
		return setExprField(doc, "value", n.Value)

	case *ast.Unary:
		doc, err = sjson.Set(doc, "type", "Unary")
		if err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "op", n.Op.Lexeme); err != nil {
			return "", err
		}
		return setExprField(doc, "right", n.Right)

	case *ast.Binary:
		doc, err = sjson.Set(doc, "type", "Binary")
		if err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "op", n.Op.Lexeme); err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "left", n.Left); err != nil {
			return "", err
		}
		return setExprField(doc, "right", n.Right)

	case *ast.Logical:
		doc, err = sjson.Set(doc, "type", "Logical")
		if err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "op", n.Op.Lexeme); err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "left", n.Left); err != nil {
			return "", err
		}
		return setExprField(doc, "right", n.Right)

	case *ast.Grouping:
		doc, err = sjson.Set(doc, "type", "Grouping")
		if err != nil {
			return "", err
		}
		return setExprField(doc, "expression", n.Expression)

	case *ast.Call:
		doc, err = sjson.Set(doc, "type", "Call")
		if err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "callee", n.Callee); err != nil {
			return "", err
		}
		args := "[]"
		for i, a := range n.Args {
			argDoc, err := dumpExpr(a)
			if err != nil {
				return "", err
			}
			args, err = sjson.SetRaw(args, strconv.Itoa(i), argDoc)
			if err != nil {
				return "", err
			}
		}
		return sjson.SetRaw(doc, "args", args)

	case *ast.SequenceOp:
		doc, err = sjson.Set(doc, "type", "SequenceOp")
		if err != nil {
			return "", err
		}
		if doc, err = setExprField(doc, "upper", n.Upper); err != nil {
			return "", err
		}
		lowerDoc, err := dumpStmt(n.Lower)
		if err != nil {
			return "", err
		}
		if doc, err = sjson.SetRaw(doc, "lower", lowerDoc); err != nil {
			return "", err
		}
		return setExprField(doc, "summand", n.Summand)

	default:
		return sjson.Set(doc, "type", "Unknown")
	}
}
