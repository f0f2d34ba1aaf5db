package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// ActorTag identifies this client in InsertedBy/UpdatedBy payload metadata.
const ActorTag = "MOBIL"
