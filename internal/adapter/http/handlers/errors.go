package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"assistente_juridico/internal/adapter/persistence/repository"
	"assistente_juridico/internal/usecase"
	"assistente_juridico/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Ocorreu um erro interno", http.StatusInternalServerError)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

// mapCommonError covers the sentinel errors several use cases share.
func mapCommonError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrDemoRestricted):
		return pkg.NewDomainError("DEMO_RESTRICTED", "Este recurso não está disponível no modo demonstração", err, http.StatusForbidden), true
	case errors.Is(err, usecase.ErrCoordinatorStopped):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Serviço em manutenção, tente novamente", err, http.StatusServiceUnavailable), true
	case errors.Is(err, usecase.ErrUnknownLicense):
		return pkg.NewDomainError("UNKNOWN_LICENSE", "Licença inválida", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered), errors.Is(err, repository.ErrEmailTaken):
		return pkg.NewDomainError("EMAIL_ALREADY_REGISTERED", "Este email já está cadastrado", err, http.StatusConflict), true
	}
	return nil, false
}

func mapRegistrationError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	var profileErr *usecase.ProfileError
	switch {
	case errors.As(err, &profileErr):
		return pkg.NewDomainError("PROFILE_INVALID",
			fmt.Sprintf("Preencha corretamente: %s", strings.Join(profileErr.Fields, ", ")), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainError("REGISTRATION_NOT_FOUND", "Cadastro não encontrado", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationCompleted):
		return pkg.NewDomainError("REGISTRATION_COMPLETED", "Cadastro já concluído", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongStep):
		return pkg.NewDomainError("WRONG_STEP", "Ação não permitida nesta etapa do cadastro", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentIntentNotReady):
		return pkg.NewDomainError("PAYMENT_INTENT_NOT_READY", "O pagamento ainda não está disponível para esta licença", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCardInvalid):
		return pkg.NewDomainError("CARD_INVALID", "Dados do cartão inválidos", err, http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}

func mapPaymentIntentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "O valor deve ser um inteiro positivo em centavos", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Não foi possível iniciar o pagamento. Tente novamente", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsRequired):
		return pkg.NewDomainError("CREDENTIALS_REQUIRED", "Email e senha são obrigatórios", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Email ou senha inválidos", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Sessão inválida ou expirada", err, http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}

func mapChatError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrChatNotFound):
		return pkg.NewDomainError("CHAT_NOT_FOUND", "Conversa não encontrada", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrModuleNotFound):
		return pkg.NewDomainError("MODULE_NOT_FOUND", "Módulo não encontrado", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrChatArchived):
		return pkg.NewDomainError("CHAT_ARCHIVED", "Esta conversa está arquivada", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyTitle):
		return pkg.NewDomainError("EMPTY_TITLE", "O título não pode ficar vazio", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotVademecumChat):
		return pkg.NewDomainError("NOT_VADEMECUM_CHAT", "Sugestões disponíveis apenas no Vademecum", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyVademecumLaw):
		return pkg.NewDomainError("EMPTY_LAW", "Informe a lei a consultar", err, http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}

func mapAttachmentError(err error, maxFiles int) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDemoAttachments):
		return pkg.NewDomainError("DEMO_RESTRICTED", "Upload de arquivos não disponível no modo demonstração", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrTooManyAttachments):
		return pkg.NewDomainError("TOO_MANY_FILES", fmt.Sprintf("Máximo de %d arquivos permitidos", maxFiles), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttachmentsTooLarge):
		return pkg.NewDomainError("FILES_TOO_LARGE", "Tamanho total dos arquivos excede 10MB", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsupportedAttachment):
		return pkg.NewDomainError("UNSUPPORTED_FILE", "Tipo de arquivo não suportado. Use PDF, DOC, DOCX ou TXT", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttachmentIndex):
		return pkg.NewDomainError("ATTACHMENT_NOT_FOUND", "Arquivo não encontrado na seleção", err, http.StatusNotFound)
	default:
		return mapChatError(err)
	}
}

func mapProcessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProcessNotFound):
		return pkg.NewDomainError("PROCESS_NOT_FOUND", "Processo não encontrado", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProcessNotFailed):
		return pkg.NewDomainError("PROCESS_NOT_FAILED", "Apenas processos com falha podem ser refeitos", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrProcessNotCompleted):
		return pkg.NewDomainError("PROCESS_NOT_READY", "O processo ainda não está pronto para download", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyTitle):
		return pkg.NewDomainError("EMPTY_TITLE", "Informe o título do processo", err, http.StatusUnprocessableEntity)
	default:
		return mapChatError(err)
	}
}

func mapProfileError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrLawyerNotFound):
		return pkg.NewDomainError("PROFILE_NOT_FOUND", "Perfil disponível apenas para contas cadastradas", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidFullName):
		return pkg.NewDomainError("INVALID_FULL_NAME", "O nome deve ter pelo menos 3 caracteres", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainError("INVALID_EMAIL", "Email inválido", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWrongPassword):
		return pkg.NewDomainError("WRONG_PASSWORD", "Senha atual incorreta", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPasswordConfirmation):
		return pkg.NewDomainError("PASSWORD_MISMATCH", "As senhas não coincidem", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainError("WEAK_PASSWORD", "A nova senha deve ter pelo menos 8 caracteres", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownCreditPackage):
		return pkg.NewDomainError("UNKNOWN_CREDIT_PACKAGE", "Pacote de créditos inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentIntentRejected):
		return pkg.NewDomainError("PAYMENT_INTENT_FAILED", "Não foi possível iniciar o pagamento. Tente novamente", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
