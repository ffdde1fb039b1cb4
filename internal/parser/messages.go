package parser

const (
	msgFarewell        = "Bye. Your tasks are saved, see you soon!"
	msgInvalidCommand  = "Sorry, I don't know that command :("
	msgNothingTracked  = "Nothing is being tracked yet!"
	msgAdded           = "Got it! Now tracking:"
	msgMarked          = "Nice! Marked this task as done:"
	msgUnmarked        = "OK, marked this task as not done yet:"
	msgRemoved         = "Removed this task:"
	msgTrackingCount   = "Now tracking %d tasks"
	msgCouldNotSave    = "Could not save tasks"
	msgNeedMarkNumber  = "Need a valid task number to mark!"
	msgNeedUnmarkNum   = "Need a valid task number to unmark!"
	msgNeedDeleteNum   = "Need a task number to delete!"
	msgNeedDescription = "Need a description of the task!"
	msgNeedDeadline    = "Need a proper description and deadline for the task!"
	msgNeedDuration    = "Need a proper description and duration for the task!"
	msgNeedDateTime    = "Need a valid date format such as 2024-08-28 1800"
	msgNeedDate        = "Need a valid date format such as 2024-08-28"
	msgShowingOn       = "Showing tasks on %s:"
	msgNothingOn       = "Cannot find any tasks on this date!"
	msgNeedKeyword     = "Need a keyword to find in the tasks!"
	msgNothingFound    = "Could not find any tasks with the keyword"
	msgFound           = "Found these tasks with the keyword!"
)
