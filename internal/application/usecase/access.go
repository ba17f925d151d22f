package usecase

// canAccess decide la visibilidad de un registro: es del usuario, o
// pertenece a la organización activa del usuario. Lo no accesible se
// reporta como no encontrado, nunca como prohibido.
func canAccess(userID, orgID, recordUserID, recordOrgID string) bool {
	if recordUserID == userID {
		return true
	}
	return recordOrgID != "" && recordOrgID == orgID
}
