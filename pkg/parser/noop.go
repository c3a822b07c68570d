package parser

// NoopHandler implements Handler with every method a no-op. Embed it in a
// test double to override only the methods under test, per spec.md §9's
// "default empty implementations" note.
type NoopHandler struct{}

func (NoopHandler) StripTypeAnnotation(start, end uint32)              {}
func (NoopHandler) StripTypeParams(start, end uint32)                  {}
func (NoopHandler) StripTypeArgs(start, end uint32)                    {}
func (NoopHandler) StripDefiniteAssignment(pos uint32)                 {}
func (NoopHandler) StripOptionalMark(pos uint32)                       {}
func (NoopHandler) StripAsExpr(exprEnd, nodeEnd uint32)                {}
func (NoopHandler) StripSatisfiesExpr(exprEnd, nodeEnd uint32)         {}
func (NoopHandler) StripPrefixAssertion(ltStart, gtEnd, exprEnd uint32) {}
func (NoopHandler) StripInterfaceDecl(start, end uint32)               {}
func (NoopHandler) StripTypeAliasDecl(start, end uint32)               {}
func (NoopHandler) StripAmbientDecl(start, end uint32)                 {}
func (NoopHandler) StripImplementsClause(start, end uint32)            {}
func (NoopHandler) StripThisParam(start, end uint32)                   {}
func (NoopHandler) StripIndexSignature(start, end uint32)              {}
func (NoopHandler) StripTypeOnlySpecifier(start, end uint32)           {}
func (NoopHandler) StripOverloadSignature(start, end uint32)           {}

func (NoopHandler) ImportEquals(keywordStart, keywordEnd uint32, isRequire bool) {}
func (NoopHandler) ExportAssignment(start, exprStart uint32)                    {}

func (NoopHandler) EnterClass(openBracePos uint32) {}
func (NoopHandler) LeaveClass()                    {}

func (NoopHandler) EnterClassElement(elementStart uint32)       {}
func (NoopHandler) ClassElementModifier(start, end uint32, keyword string) {}

func (NoopHandler) EnterFunctionWithParamProps()                                       {}
func (NoopHandler) ParamProperty(modStart, modEnd, idStart, idEnd uint32, idText string) {}
func (NoopHandler) DirectivePrologueStmt(start, end uint32)                            {}
func (NoopHandler) SuperCallStmt(start, end uint32, isWholeExprStmt bool)              {}
func (NoopHandler) LeaveFunctionWithParamProps(elementStart, bodyOpenBrace uint32, isConstructor bool) {
}

func (NoopHandler) EnterEnum(name string, keywordStart, idStart, idEnd, bodyOpenBrace uint32, isAmbient bool) {
}
func (NoopHandler) EnumMember(hasInit, isIdentifier bool, name, valueText string, nameEnd, valueEnd, separatorEnd uint32) {
}
func (NoopHandler) LeaveEnum(end uint32) {}

func (NoopHandler) EnterNamespace(name string, isAmbient bool, keywordStart, bodyOpenBrace uint32) {}
func (NoopHandler) NamespaceExportStmt(exportStart, declEnd uint32, bindingIdentifiers []string) {
}
func (NoopHandler) NamespaceBodyStatement(wasStripped bool) {}
func (NoopHandler) LeaveNamespace(end uint32)                {}

func (NoopHandler) ArrowReturnType(parenCloseStart, parenCloseEnd, typeEnd, arrowStart uint32) {}
func (NoopHandler) ArrowTypeParams(start, end uint32)                                         {}

func (NoopHandler) Statement(start, end uint32)           {}
func (NoopHandler) ControlBodyStripped(start, end uint32) {}

func (NoopHandler) Checkpoint() int       { return 0 }
func (NoopHandler) Rewind(checkpoint int) {}
