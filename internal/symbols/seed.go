package symbols

// DefaultKnownTickers is the seed list of NSE-listed tickers used when no
// table is supplied through configuration.
var DefaultKnownTickers = []string{
	"RELIANCE", "TCS", "INFY", "HDFCBANK", "ICICIBANK", "SBIN", "ITC",
	"HINDUNILVR", "BHARTIARTL", "KOTAKBANK", "LT", "ASIANPAINT", "MARUTI",
	"TITAN", "NESTLEIND", "ULTRACEMCO", "POWERGRID", "NTPC", "ONGC",
	"COALINDIA", "WIPRO", "TECHM", "HCLTECH", "DRREDDY", "SUNPHARMA",
	"CIPLA", "DIVISLAB", "BAJFINANCE", "BAJAJFINSV", "AXISBANK",
	"INDUSINDBK", "TATAMOTORS", "TATASTEEL", "JSWSTEEL", "HINDALCO",
	"ADANIPORTS", "ADANIENT", "GRASIM", "BRITANNIA", "HEROMOTOCO",
	"BAJAJ-AUTO", "EICHERMOT", "BPCL", "IOC", "SHREECEM", "AMBUJACEM",
	"ACC", "VEDL", "SAIL", "NMDC", "JINDALSTEL", "TATACHEM", "UPL",
	"PIDILITIND", "DMART", "GODREJCP", "MARICO", "DABUR", "COLPAL",
	"PGHH", "MCDOWELL-N", "UBL", "APOLLOHOSP", "FORTIS", "LUPIN",
	"BIOCON", "CADILAHC", "AUROPHARMA", "TORNTPHARM", "ALKEM", "CONCOR",
	"SIEMENS", "ABB", "BHEL", "CROMPTON", "HAVELLS", "VOLTAS", "BLUESTAR",
	"CUMMINSIND", "BOSCHLTD", "MOTHERSUMI", "AMARAJABAT", "EXIDEIND",
	"MFSL", "SRTRANSFIN", "CHOLAFIN", "PFC", "RECLTD", "IRCTC", "FINOPB",
	"INOXGREEN",
}
