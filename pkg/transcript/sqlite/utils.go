package sqlite

// buildWhereClause builds the optional session filter.
func buildWhereClause(sessionID string) (string, []interface{}) {
	if sessionID == "" {
		return "", nil
	}
	return "WHERE session_id = ?", []interface{}{sessionID}
}
