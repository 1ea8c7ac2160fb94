package store

// LoginPending marks the start of a login attempt.
func LoginPending(s AuthState) AuthState {
	s.Loading = true
	s.Error = ""
	return s
}

func LoginFulfilled(token string) func(AuthState) AuthState {
	return func(AuthState) AuthState {
		return AuthState{Token: token}
	}
}

// LoginRejected records msg and drops any previous token.
func LoginRejected(msg string) func(AuthState) AuthState {
	return func(AuthState) AuthState {
		return AuthState{Error: msg}
	}
}

// LoggedOut clears the session.
func LoggedOut(AuthState) AuthState {
	return AuthState{}
}
