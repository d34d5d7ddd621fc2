package api

// Client-facing messages, kept in Indonesian for compatibility with
// existing clients of the bookshelf API.
const (
	msgCreateFailed  = "Gagal menambahkan buku"
	msgUpdateFailed  = "Gagal memperbarui buku"
	msgCreated       = "Buku berhasil ditambahkan"
	msgInsertFailed  = "Buku gagal ditambahkan"
	msgUpdated       = "Buku berhasil diperbarui"
	msgDeleted       = "Buku berhasil dihapus"
	msgNotFound      = "Buku tidak ditemukan"
	msgUpdateMissing = "Gagal memperbarui buku. Id tidak ditemukan"
	msgDeleteMissing = "Buku gagal dihapus. Id tidak ditemukan"
	msgServerError   = "Terjadi kegagalan pada server"

	reasonMissingName   = "Mohon isi nama buku"
	reasonReadPage      = "readPage tidak boleh lebih besar dari pageCount"
	reasonNegativePages = "pageCount dan readPage tidak boleh negatif"
	reasonBadPayload    = "Payload tidak valid"
)
