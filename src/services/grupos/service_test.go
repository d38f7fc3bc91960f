package grupos

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type deleteCmd struct {
	Delete  string `bson:"delete"`
	Deletes []struct {
		Q     bson.Raw `bson:"q"`
		Limit int32    `bson:"limit"`
	} `bson:"deletes"`
}

func TestDeleteGrupoCascada(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("BorraInscripcionesPrimero", func(mt *mtest.T) {
		DB.InscripcionCollection = mt.DB.Collection("inscripciones")
		DB.GrupoCollection = mt.DB.Collection("grupos")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		// clave string: el grupo legacy sembrado con _id opaco
		require.NoError(mt, DeleteGrupo(utils.ParseDocKey("grupo-legacy")))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		var cascada deleteCmd
		require.NoError(mt, bson.Unmarshal(evt.Command, &cascada))
		assert.Equal(mt, "inscripciones", cascada.Delete)
		require.Len(mt, cascada.Deletes, 1)
		assert.Equal(mt, int32(0), cascada.Deletes[0].Limit)

		id, ok := cascada.Deletes[0].Q.Lookup("grupo._id").StringValueOK()
		require.True(mt, ok)
		assert.Equal(mt, "grupo-legacy", id)

		evt = mt.GetStartedEvent()
		require.NotNil(mt, evt)
		var principal deleteCmd
		require.NoError(mt, bson.Unmarshal(evt.Command, &principal))
		assert.Equal(mt, "grupos", principal.Delete)
		require.Len(mt, principal.Deletes, 1)
		assert.Equal(mt, int32(1), principal.Deletes[0].Limit)
	})

	mt.Run("IdInexistenteNoEsError", func(mt *mtest.T) {
		DB.InscripcionCollection = mt.DB.Collection("inscripciones")
		DB.GrupoCollection = mt.DB.Collection("grupos")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, DeleteGrupo(utils.ParseDocKey("no-existe")))
	})
}
