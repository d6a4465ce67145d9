package paths

const (
	WalletDIDPublic string = "/wallet/did/public"
)
