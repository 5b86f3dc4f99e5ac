package apierrors

// Request shape.
const (
	MsgInvalidProjectID    = "invalidProjectID"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidMembershipID = "invalidMembershipID"
	MsgInvalidPayload      = "invalidPayload"
	MsgInvalidQuery        = "invalidQuery"
	MsgPayloadValidation   = "payloadValidationFailed"
)

// Authentication.
const (
	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"
	MsgInvalidCredentials = "invalidCredentials"
)

// Domain failures.
const (
	MsgProjectNotFound    = "projectNotFound"
	MsgUserNotInProject   = "userNotInProject"
	MsgTaskNotFound       = "taskNotFound"
	MsgLinkedTaskNotFound = "linkedTaskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgMembershipNotFound = "membershipNotFound"
	MsgNotAssignee        = "notAssignee"
	MsgAdminRequired      = "adminRequired"
	MsgCrossProjectLink   = "crossProjectLink"
	MsgSelfLink           = "selfLink"
	MsgTaskConflict       = "taskConflict"
	MsgMembershipExists   = "membershipExists"
	MsgEmailTaken         = "emailTaken"
)

// Unexpected failures per operation.
const (
	MsgFailListTasks         = "failListTasks"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailGetTaskUser       = "failGetTaskUser"
	MsgFailListProjects      = "failListProjects"
	MsgFailCountProjects     = "failCountProjects"
	MsgFailGetProject        = "failGetProject"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailAssignUser        = "failAssignUser"
	MsgFailListMemberships   = "failListMemberships"
	MsgFailUpdateMemberships = "failUpdateMemberships"
	MsgFailDeleteMemberships = "failDeleteMemberships"
	MsgFailGetMembershipUser = "failGetMembershipUser"
	MsgFailSignUp            = "failSignUp"
	MsgFailLogin             = "failLogin"
	MsgFailGetUser           = "failGetUser"
)
