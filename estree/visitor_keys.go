package estree

// visitorKeys lists, per ESTree node type, the child properties in source
// order. Types or properties not listed are visited afterwards in name order.
var visitorKeys = map[string][]string{
	"ArrayExpression":          {"elements"},
	"ArrayPattern":             {"elements"},
	"ArrowFunctionExpression":  {"params", "body"},
	"AssignmentExpression":     {"left", "right"},
	"AssignmentPattern":        {"left", "right"},
	"AwaitExpression":          {"argument"},
	"BinaryExpression":         {"left", "right"},
	"BlockStatement":           {"body"},
	"BreakStatement":           {"label"},
	"CallExpression":           {"callee", "arguments"},
	"CatchClause":              {"param", "body"},
	"ChainExpression":          {"expression"},
	"ClassBody":                {"body"},
	"ClassDeclaration":         {"id", "superClass", "body"},
	"ClassExpression":          {"id", "superClass", "body"},
	"ConditionalExpression":    {"test", "consequent", "alternate"},
	"ContinueStatement":        {"label"},
	"DoWhileStatement":         {"body", "test"},
	"ExportAllDeclaration":     {"exported", "source"},
	"ExportDefaultDeclaration": {"declaration"},
	"ExportNamedDeclaration":   {"declaration", "specifiers", "source"},
	"ExportSpecifier":          {"exported", "local"},
	"ExpressionStatement":      {"expression"},
	"ForInStatement":           {"left", "right", "body"},
	"ForOfStatement":           {"left", "right", "body"},
	"ForStatement":             {"init", "test", "update", "body"},
	"FunctionDeclaration":      {"id", "params", "body"},
	"FunctionExpression":       {"id", "params", "body"},
	"IfStatement":              {"test", "consequent", "alternate"},
	"ImportDeclaration":        {"specifiers", "source"},
	"ImportDefaultSpecifier":   {"local"},
	"ImportNamespaceSpecifier": {"local"},
	"ImportSpecifier":          {"imported", "local"},
	"LabeledStatement":         {"label", "body"},
	"LogicalExpression":        {"left", "right"},
	"MemberExpression":         {"object", "property"},
	"MethodDefinition":         {"key", "value"},
	"NewExpression":            {"callee", "arguments"},
	"ObjectExpression":         {"properties"},
	"ObjectPattern":            {"properties"},
	"Program":                  {"body"},
	"Property":                 {"key", "value"},
	"PropertyDefinition":       {"key", "value"},
	"RestElement":              {"argument"},
	"ReturnStatement":          {"argument"},
	"SequenceExpression":       {"expressions"},
	"SpreadElement":            {"argument"},
	"SwitchCase":               {"test", "consequent"},
	"SwitchStatement":          {"discriminant", "cases"},
	"TaggedTemplateExpression": {"tag", "quasi"},
	"TemplateLiteral":          {"quasis", "expressions"},
	"ThrowStatement":           {"argument"},
	"TryStatement":             {"block", "handler", "finalizer"},
	"UnaryExpression":          {"argument"},
	"UpdateExpression":         {"argument"},
	"VariableDeclaration":      {"declarations"},
	"VariableDeclarator":       {"id", "init"},
	"WhileStatement":           {"test", "body"},
	"WithStatement":            {"object", "body"},
	"YieldExpression":          {"argument"},
}
