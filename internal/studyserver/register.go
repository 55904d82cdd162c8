// Package studyserver registers the tubestudy MCP tools: video processing,
// summaries, quizzes, flashcards, chat, learning paths, the local study
// tracker, and the optional per-user data store.
package studyserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all tubestudy tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerProcessVideo(server)
	registerVideoSummary(server)
	registerVideoQuiz(server)
	registerQuizEvaluate(server)
	registerVideoFlashcards(server)
	registerVideoChat(server)
	registerLearningPath(server)
	registerLearningPathUpdate(server)
	registerStudyTrackerAdd(server)
	registerStudyTrackerList(server)
	registerStudyTrackerUpdate(server)
	registerUserDataSave(server)
	registerUserDataLoad(server)
}
