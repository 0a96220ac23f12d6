package extract

import (
	"github.com/nestdotland/nest-analyzer/extract/matchers"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken int = iota
	lineCommentToken
	blockCommentToken
	doubleQuotedToken
	singleQuotedToken
	templateToken
	identifierToken
	regexToken
	punctToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var lineCommentMatcher = parsly.NewToken(lineCommentToken, "//", matchers.NewLineComment())
var blockCommentMatcher = parsly.NewToken(blockCommentToken, "/**/", matcher.NewSeqBlock("/*", "*/"))
var doubleQuotedMatcher = parsly.NewToken(doubleQuotedToken, "double quoted string", matcher.NewQuote('"', '\\'))
var singleQuotedMatcher = parsly.NewToken(singleQuotedToken, "single quoted string", matcher.NewQuote('\'', '\\'))
var templateMatcher = parsly.NewToken(templateToken, "template literal", matcher.NewQuote('`', '\\'))
var identifierMatcher = parsly.NewToken(identifierToken, "identifier", matchers.NewIdentifier())
var regexMatcher = parsly.NewToken(regexToken, "regular expression", matchers.NewRegex())
var punctMatcher = parsly.NewToken(punctToken, "punctuation", matchers.NewPunct())

// expressionTokens match where a slash starts a division
var expressionTokens = []*parsly.Token{lineCommentMatcher, blockCommentMatcher,
	doubleQuotedMatcher, singleQuotedMatcher, templateMatcher, identifierMatcher, punctMatcher}

// operandTokens match where a slash starts a regular expression literal
var operandTokens = []*parsly.Token{lineCommentMatcher, blockCommentMatcher,
	doubleQuotedMatcher, singleQuotedMatcher, templateMatcher, identifierMatcher, regexMatcher, punctMatcher}
