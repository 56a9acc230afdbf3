package apierrors

const (
	MsgFailListTask        = "errorListTask"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgTitleRequired       = "titleRequired"
	MsgTaskNotFound        = "taskNotFound"
	MsgTaskDeleted         = "taskDeleted"
	MsgNotAuthorized       = "notAuthorized"
	MsgInvalidToken        = "invalidToken"
	MsgUserNotFound        = "userNotFound"
	MsgInvalidAuthPayload  = "invalidAuthPayload"
	MsgRegisterFieldsEmpty = "registerFieldsEmpty"
	MsgLoginFieldsEmpty    = "loginFieldsEmpty"
	MsgUserAlreadyExists   = "userAlreadyExists"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgFailRegister        = "failRegister"
	MsgFailLogin           = "failLogin"
	MsgFailAuthenticate    = "failAuthenticate"
	MsgFailDocs            = "failDocs"
)
