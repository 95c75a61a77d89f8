package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/recovery"
	"github.com/homebrain/homebrain/internal/services"
	"github.com/homebrain/homebrain/internal/store"
)

// Deps carries the collaborators the router wires into handlers.
type Deps struct {
	Store         store.Store
	Family        *services.FamilyService
	Calendar      *services.CalendarService
	Tasks         *services.TaskService
	Lists         *services.ListService
	Meals         *services.MealService
	Chat          *services.ChatService
	Voice         *services.VoiceService
	Summary       *services.SummaryService
	Notifications *services.NotificationService
	Log           zerolog.Logger
}

// NewRouter builds the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	health := NewHealthHandler(d.Store)
	family := NewFamilyHandler(d.Family, d.Log)
	calendar := NewCalendarHandler(d.Calendar, d.Log)
	tasks := NewTaskHandler(d.Tasks, d.Log)
	lists := NewListHandler(d.Lists, d.Log)
	meals := NewMealHandler(d.Meals, d.Log)
	chat := NewChatHandler(d.Chat, d.Log)
	voice := NewVoiceHandler(d.Voice, d.Log)
	summary := NewSummaryHandler(d.Summary, d.Log)
	notifications := NewNotificationHandler(d.Notifications, d.Log)

	router.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	router.HandleFunc("/api/families", family.CreateFamily).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/family", family.GetFamily).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/family/members", family.ListMembers).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/family/members", family.AddMember).Methods("POST")

	router.HandleFunc("/api/actors/{actorId}/events", calendar.ListEvents).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/events", calendar.CreateEvent).Methods("POST")

	router.HandleFunc("/api/actors/{actorId}/tasks", tasks.ListTasks).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/tasks", tasks.CreateTask).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/tasks/{taskId}", tasks.UpdateTask).Methods("PATCH")

	router.HandleFunc("/api/actors/{actorId}/lists", lists.ListLists).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/lists", lists.CreateList).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/lists/{listId}/items", lists.ListItems).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/lists/{listId}/items", lists.AddItem).Methods("POST")

	router.HandleFunc("/api/actors/{actorId}/meals", meals.ListMealPlans).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/meals", meals.CreateMealPlan).Methods("POST")

	router.HandleFunc("/api/actors/{actorId}/chat", chat.Chat).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/chat/history", chat.History).Methods("GET")

	router.HandleFunc("/api/actors/{actorId}/voice/transcribe", voice.Transcribe).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/voice/command", voice.ProcessCommand).Methods("POST")
	router.HandleFunc("/api/actors/{actorId}/voice/synthesize", voice.Synthesize).Methods("POST")

	router.HandleFunc("/api/actors/{actorId}/summary/daily", summary.DailyBrief).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/summary/weekly", summary.WeeklyRecap).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/summary/mood", summary.MoodSuggestions).Methods("GET")

	router.HandleFunc("/api/actors/{actorId}/notifications", notifications.ListNotifications).Methods("GET")
	router.HandleFunc("/api/actors/{actorId}/notifications", notifications.CreateNotification).Methods("POST")

	return router
}
